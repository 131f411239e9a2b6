package extraction

import (
	"encoding/json"
	"strings"

	"github.com/dfmora/car2data/internal/common"
)

const (
	// Unavailable is the placeholder the model is instructed to emit for
	// unknown fields; the normalizer folds it to the canonical empty value.
	Unavailable = "No disponible"

	// Unidentified is the placeholder for an unrecognized document type.
	Unidentified = "No identificado"

	// maxObservaciones bounds the raw-response excerpt carried for
	// diagnostics when the model output could not be parsed.
	maxObservaciones = 2000
)

// ParseResponse treats the model response as untrusted text: it slices
// the substring between the first '{' and the last '}' and decodes it.
// A failure at any step returns common.ErrParse; callers recover by
// substituting FallbackExtraction.
func ParseResponse(text string) (RawExtraction, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, common.NewAppError("EXTRACT_PARSE", "no JSON object in model response", common.ErrParse)
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &m); err != nil {
		return nil, common.NewAppError("EXTRACT_PARSE", "model response is not valid JSON", common.ErrParse)
	}

	if err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), []byte(text[start:end+1])); err != nil {
		return nil, common.NewAppError("EXTRACT_PARSE", "model response does not match expected shape", common.ErrParse)
	}

	return m, nil
}

// FallbackExtraction builds the default "unavailable" structure: every
// expected field carries the placeholder, and observaciones carries a
// truncated copy of the raw response for diagnostics.
func FallbackExtraction(rawResponse string) RawExtraction {
	obs := strings.TrimSpace(rawResponse)
	if len(obs) > maxObservaciones {
		obs = obs[:maxObservaciones] + "…(truncado)"
	}
	return RawExtraction{
		"tipo_documento": Unidentified,
		"vehiculo": map[string]any{
			"placa":          Unavailable,
			"marca":          Unavailable,
			"linea":          Unavailable,
			"modelo":         Unavailable,
			"color":          Unavailable,
			"numero_motor":   Unavailable,
			"numero_chasis":  Unavailable,
			"numero_serie":   Unavailable,
			"vin":            Unavailable,
			"cilindraje":     Unavailable,
			"potencia_hp":    Unavailable,
			"capacidad":      Unavailable,
			"carroceria":     Unavailable,
			"clase_vehiculo": Unavailable,
			"combustible":    Unavailable,
			"servicio":       Unavailable,
			"puertas":        Unavailable,
		},
		"propietario": map[string]any{
			"nombre":         Unavailable,
			"identificacion": Unavailable,
			"direccion":      Unavailable,
			"telefono":       Unavailable,
			"ciudad":         Unavailable,
		},
		"registro": map[string]any{
			"licencia_transito":         Unavailable,
			"organismo_transito":        Unavailable,
			"fecha_matricula":           Unavailable,
			"fecha_expedicion_licencia": Unavailable,
			"declaracion_importacion":   Unavailable,
			"fecha_importacion":         Unavailable,
		},
		"restricciones": map[string]any{
			"restriccion_movilidad": Unavailable,
			"blindaje":              Unavailable,
			"prenda":                Unavailable,
		},
		"observaciones": obs,
	}
}
