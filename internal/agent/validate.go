package agent

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled payload schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateNormalized checks a normalized payload against its schema.
// The value is round-tripped through JSON because the jsonschema library
// validates parsed JSON values, not Go structs.
func validateNormalized(schema *payloadSchema, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse payload: %w", err)
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema %q: %w", schema.Name, err)
	}
	return nil
}

func validateQuestion(q *Question) error {
	return validateNormalized(questionSchema, q)
}

func validateAnalytics(a *Analytics) error {
	return validateNormalized(analyticsSchema, a)
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *payloadSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
