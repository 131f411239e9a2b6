package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. It is deliberately permissive about section key
// names: older prompt generations returned "informacion_vehiculo" etc.,
// and the normalizer resolves that drift. The schema's job is only to
// reject responses that are not an object of sections.
func BuildExtractionJSONSchema() map[string]any {
	section := func() map[string]any {
		return map[string]any{"type": "object"}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tipo_documento":             map[string]any{"type": "string"},
			"vehiculo":                   section(),
			"informacion_vehiculo":       section(),
			"propietario":                section(),
			"informacion_propietario":    section(),
			"registro":                   section(),
			"detalles_registro":          section(),
			"restricciones":              section(),
			"restricciones_limitaciones": section(),
			"observaciones":              map[string]any{"type": "string"},
		},
		// model output drifts; unknown keys are dropped downstream
		"additionalProperties": true,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
