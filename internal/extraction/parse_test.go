package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfmora/car2data/internal/common"
)

func TestParseResponseSlicesSurroundingProse(t *testing.T) {
	text := "Claro, aquí está el resultado:\n```json\n" +
		`{"tipo_documento": "Licencia de Tránsito", "vehiculo": {"placa": "ABC123"}}` +
		"\n```\nEspero que sea útil."

	raw, err := ParseResponse(text)
	require.NoError(t, err)
	assert.Equal(t, "Licencia de Tránsito", raw["tipo_documento"])

	vehiculo, ok := raw["vehiculo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ABC123", vehiculo["placa"])
}

func TestParseResponseNoJSON(t *testing.T) {
	_, err := ParseResponse("lo siento, no puedo procesar este documento")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParse)
}

func TestParseResponseInvalidJSON(t *testing.T) {
	_, err := ParseResponse(`{"tipo_documento": "Licencia",`)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParse)

	// braces present but reversed
	_, err = ParseResponse("} nada {")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParse)
}

func TestParseResponseRejectsNonObjectSections(t *testing.T) {
	_, err := ParseResponse(`{"vehiculo": "ABC123"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParse)
}

func TestParseResponseAcceptsLegacySectionNames(t *testing.T) {
	raw, err := ParseResponse(`{"informacion_vehiculo": {"placa": "XYZ789"}, "detalles_registro": {}}`)
	require.NoError(t, err)
	_, ok := raw["informacion_vehiculo"]
	assert.True(t, ok)
}

func TestFallbackExtractionShape(t *testing.T) {
	raw := FallbackExtraction("respuesta sin estructura")

	assert.Equal(t, Unidentified, raw["tipo_documento"])
	assert.Equal(t, "respuesta sin estructura", raw["observaciones"])

	for _, section := range []string{"vehiculo", "propietario", "registro", "restricciones"} {
		m, ok := raw[section].(map[string]any)
		require.True(t, ok, section)
		require.NotEmpty(t, m, section)
		for field, v := range m {
			assert.Equal(t, Unavailable, v, section+"."+field)
		}
	}
}

func TestFallbackExtractionTruncatesObservaciones(t *testing.T) {
	raw := FallbackExtraction(strings.Repeat("x", maxObservaciones+500))
	obs, ok := raw["observaciones"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(obs, "…(truncado)"))
	assert.Less(t, len(obs), maxObservaciones+100)
}

func TestBuildPromptPinsTheContract(t *testing.T) {
	p := BuildPrompt()
	assert.Contains(t, p, "tipo_documento")
	assert.Contains(t, p, "vehiculo")
	assert.Contains(t, p, "propietario")
	assert.Contains(t, p, Unavailable)
}
