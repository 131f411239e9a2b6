package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dfmora/car2data/internal/extraction"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
}

func TestMergePrecedenceFormWins(t *testing.T) {
	form := FieldMap{"vehiculo.placa": "ABC123"}
	extracted := FieldMap{"vehiculo.placa": "ABC123"}
	persisted := FieldMap{"vehiculo.placa": "XYZ999"}

	out := Merge(form, extracted, persisted, fixedClock)
	assert.Equal(t, "ABC123", out["vehiculo.placa"])
}

func TestMergeExtractionBeatsPersisted(t *testing.T) {
	out := Merge(
		FieldMap{},
		FieldMap{"vehiculo.color": "Rojo"},
		FieldMap{"vehiculo.color": "Azul"},
		fixedClock,
	)
	assert.Equal(t, "Rojo", out["vehiculo.color"])
}

func TestMergePersistedAsFallback(t *testing.T) {
	out := Merge(
		FieldMap{},
		FieldMap{},
		FieldMap{"propietario.direccion": "Calle 10 # 5-33"},
		fixedClock,
	)
	assert.Equal(t, "Calle 10 # 5-33", out["propietario.direccion"])
}

func TestMergeSentinelFormValueIsAbsent(t *testing.T) {
	// a sentinel from the form must not override the extraction
	out := Merge(
		FieldMap{"vehiculo.marca": "No disponible"},
		FieldMap{"vehiculo.marca": "Mazda"},
		FieldMap{},
		fixedClock,
	)
	assert.Equal(t, "Mazda", out["vehiculo.marca"])

	out = Merge(
		FieldMap{"vehiculo.marca": "   "},
		FieldMap{},
		FieldMap{"vehiculo.marca": "Renault"},
		fixedClock,
	)
	assert.Equal(t, "Renault", out["vehiculo.marca"])
}

func TestMergeDeterministic(t *testing.T) {
	form := FieldMap{"vehiculo.placa": "ABC123", "mandante.nombre": "Juan Perez"}
	extracted := FieldMap{"vehiculo.color": "Gris", "propietario.documento": "123"}
	persisted := FieldMap{"vehiculo.modelo": "2019"}

	first := Merge(form, extracted, persisted, fixedClock)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Merge(form, extracted, persisted, fixedClock))
	}
}

func TestMergeDateDefaultOnlyWhenWhollyAbsent(t *testing.T) {
	out := Merge(FieldMap{}, FieldMap{}, FieldMap{}, fixedClock)
	assert.Equal(t, "2025-03-14", out["fecha_tramite"])

	out = Merge(FieldMap{"fecha_tramite": "2024-01-01"}, FieldMap{}, FieldMap{}, fixedClock)
	assert.Equal(t, "2024-01-01", out["fecha_tramite"])

	out = Merge(FieldMap{}, FieldMap{}, FieldMap{"fecha_tramite": "2023-06-30"}, fixedClock)
	assert.Equal(t, "2023-06-30", out["fecha_tramite"])
}

func TestMergeRoleFallsBackToExtractedOwner(t *testing.T) {
	extracted := FromExtraction(extraction.CanonicalExtraction{
		Propietario: extraction.Propietario{
			Nombre:         "Maria Lopez",
			Identificacion: "987",
		},
	})

	out := Merge(FieldMap{}, extracted, FieldMap{}, fixedClock)
	assert.Equal(t, "Maria Lopez", out["mandante.nombre"])
	assert.Equal(t, "987", out["mandante.documento"])
	assert.Equal(t, "Maria Lopez", out["vendedor.nombre"])

	// explicit form input still wins over the fallback
	out = Merge(FieldMap{"mandante.nombre": "Pedro Ruiz"}, extracted, FieldMap{}, fixedClock)
	assert.Equal(t, "Pedro Ruiz", out["mandante.nombre"])
}

func TestFromExtractionFlattensOnlyNonEmpty(t *testing.T) {
	fm := FromExtraction(extraction.CanonicalExtraction{
		Vehiculo: extraction.Vehiculo{Placa: "ABC123"},
	})
	assert.Equal(t, "ABC123", fm["vehiculo.placa"])
	_, hasColor := fm["vehiculo.color"]
	assert.False(t, hasColor, "empty leaves are omitted")
}
