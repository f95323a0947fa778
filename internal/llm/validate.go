package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CompileSchema compiles an in-memory schema definition. Schemas here are
// built as map[string]any so the same definition can be embedded in the model
// prompt and enforced on the answer.
func CompileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("inline.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := c.Compile("inline.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// ValidateJSONAgainstSchema checks a raw JSON document against the schema
// definition. The document must decode before it can be validated; a decode
// failure is reported as such rather than as a schema violation.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	schema, err := CompileSchema(schemaMap)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}
