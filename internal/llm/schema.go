package llm

import "github.com/tkarvonen/huoltokirja/constants"

// BuildFieldJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as an output constraint and also use
// it locally to validate the response. Every property is optional: the model
// must omit fields it cannot read rather than invent them.
func BuildFieldJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			constants.FieldDate: map[string]any{
				"type":    "string",
				"pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
			constants.FieldAmount:    map[string]any{"type": "number", "minimum": 0.0},
			constants.FieldVATAmount: map[string]any{"type": "number", "minimum": 0.0},
			constants.FieldInvoiceNumber: map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			constants.FieldOdometerKM: map[string]any{"type": "integer", "minimum": 0},
			constants.FieldCompany: map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			constants.FieldVehicleReg: map[string]any{
				"type":    "string",
				"pattern": `^[A-Z]{3}-\d{3}$`,
			},
			constants.FieldWorkDescription: map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"maxItems": constants.MaxWorkDescriptions,
			},
		},
	}
}
