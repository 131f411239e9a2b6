package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfmora/car2data/internal/extraction"
)

func TestFoldSentinels(t *testing.T) {
	for _, v := range []string{"No disponible", "N/A", "na", "None", "null", "Sin dato", "", "   "} {
		assert.Equal(t, "", Fold(v), "value %q should fold to empty", v)
		assert.True(t, IsEmpty(v))
	}
}

func TestFoldIdentityOnRealValues(t *testing.T) {
	for _, v := range []string{"ABC123", "Mazda", "0", "Nariño"} {
		assert.Equal(t, v, Fold(v))
		assert.False(t, IsEmpty(v))
	}
	// trimming only, content untouched
	assert.Equal(t, "ABC123", Fold("  ABC123  "))
}

func TestNormalizeCurrentSchema(t *testing.T) {
	raw := extraction.RawExtraction{
		"tipo_documento": "Licencia de tránsito (matrícula)",
		"vehiculo": map[string]any{
			"placa":      "ABC123",
			"marca":      "Mazda",
			"modelo":     float64(2018),
			"color":      "No disponible",
			"cilindraje": "2000",
		},
		"propietario": map[string]any{
			"nombre":         "Juan Perez Gomez",
			"identificacion": "123456789",
		},
		"registro": map[string]any{
			"licencia_transito": "10012345678",
		},
	}

	c, diags := Normalize(raw)

	assert.Equal(t, "ABC123", c.Vehiculo.Placa)
	assert.Equal(t, "Mazda", c.Vehiculo.Marca)
	assert.Equal(t, "2018", c.Vehiculo.Modelo)
	assert.Equal(t, "", c.Vehiculo.Color, "sentinel must fold")
	assert.Equal(t, "2000", c.Vehiculo.Cilindraje)
	assert.Equal(t, "Juan Perez Gomez", c.Propietario.Nombre)
	assert.Equal(t, "123456789", c.Propietario.Identificacion)
	assert.Equal(t, "10012345678", c.Registro.LicenciaTransito)
	assert.Equal(t, 1, diags.FoldedCount)
	assert.Empty(t, diags.AliasedKeys)
}

func TestNormalizeLegacySchemaMatchesCurrent(t *testing.T) {
	current := extraction.RawExtraction{
		"vehiculo": map[string]any{
			"placa":      "XYZ987",
			"vin":        "1HGCM82633A004352",
			"cilindraje": "1600",
			"carroceria": "Sedán",
		},
		"propietario": map[string]any{
			"nombre":         "Maria Lopez",
			"identificacion": "987654321",
		},
		"registro": map[string]any{
			"licencia_transito": "555",
		},
	}
	legacy := extraction.RawExtraction{
		"informacion_vehiculo": map[string]any{
			"placa":           "XYZ987",
			"numero_vin":      "1HGCM82633A004352",
			"cilindrada_cc":   "1600",
			"tipo_carroceria": "Sedán",
		},
		"informacion_propietario": map[string]any{
			"nombre":    "Maria Lopez",
			"documento": "987654321",
		},
		"detalles_registro": map[string]any{
			"licencia_transito_numero": "555",
		},
	}

	fromCurrent, _ := Normalize(current)
	fromLegacy, legacyDiags := Normalize(legacy)

	assert.Equal(t, fromCurrent, fromLegacy, "both schema generations must normalize identically")
	assert.NotEmpty(t, legacyDiags.AliasedKeys)
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := extraction.RawExtraction{
		"vehiculo":    map[string]any{"placa": "ABC123", "color": "n/a"},
		"propietario": map[string]any{"nombre": "Juan Perez"},
	}
	first, _ := Normalize(raw)

	// re-normalizing the canonical output (as a raw map) is a no-op
	again, _ := Normalize(extraction.RawExtraction{
		"vehiculo": map[string]any{
			"placa": first.Vehiculo.Placa,
			"color": first.Vehiculo.Color,
		},
		"propietario": map[string]any{"nombre": first.Propietario.Nombre},
	})
	assert.Equal(t, first, again)
}

func TestNormalizeAlwaysFullyPopulated(t *testing.T) {
	c, _ := Normalize(nil)
	// zero-valued but structurally complete
	assert.Equal(t, "", c.Vehiculo.Placa)
	assert.Equal(t, "", c.Propietario.Identificacion)
	assert.Equal(t, "", c.Registro.OrganismoTransito)
	assert.Equal(t, "", c.Restricciones.Blindaje)
}

func TestNormalizePrefersCurrentKeyOverLegacy(t *testing.T) {
	raw := extraction.RawExtraction{
		"propietario": map[string]any{
			"identificacion": "111",
			"documento":      "222",
		},
	}
	c, _ := Normalize(raw)
	assert.Equal(t, "111", c.Propietario.Identificacion)

	// empty current key falls back to legacy
	raw["propietario"].(map[string]any)["identificacion"] = "No disponible"
	c, _ = Normalize(raw)
	assert.Equal(t, "222", c.Propietario.Identificacion)
}

func TestNormalizeFallbackStructure(t *testing.T) {
	raw := extraction.FallbackExtraction("el modelo no devolvió JSON válido")
	c, _ := Normalize(raw)

	require.NotNil(t, raw["vehiculo"])
	assert.Equal(t, "", c.Vehiculo.Placa, "placeholders fold to empty")
	assert.Equal(t, "", c.TipoDocumento)
	assert.Equal(t, "el modelo no devolvió JSON válido", c.Observaciones, "diagnostic note survives")
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		in   string
		want SplitName
	}{
		{"Perez", SplitName{PrimerApellido: "Perez"}},
		{"Perez Gomez", SplitName{PrimerApellido: "Perez", Nombres: "Gomez"}},
		{"Perez Gomez Juan Carlos", SplitName{PrimerApellido: "Perez", SegundoApellido: "Gomez", Nombres: "Juan Carlos"}},
		{"", SplitName{}},
		{"   ", SplitName{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitFullName(tt.in), "split(%q)", tt.in)
	}
}
