package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
)

// BuildResultJSONSchema returns the JSON-Schema (draft 2020-12 subset) every Result must satisfy.
func BuildResultJSONSchema() map[string]any {
	props := map[string]any{
		"document_id":      map[string]any{"type": "string", "minLength": 1},
		"path":             map[string]any{"type": "string"},
		"cardholder_name":  map[string]any{"type": "string", "minLength": 1},
		"statement_date":   map[string]any{"type": "string", "minLength": 1},
		"payment_due_date": map[string]any{"type": "string", "minLength": 1},
		"total_amount_due": sentinelOr(`\d+\.\d{2}`),
		"card_last4":       sentinelOr(`\d{4}`),
		"candidates": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"dates":   candidateList(),
				"amounts": candidateList(),
				"masked":  candidateList(),
			},
			"required": []string{"dates", "amounts", "masked"},
		},
		"source": map[string]any{"type": "string", "enum": []string{
			string(constants.MethodPDFText), string(constants.MethodPDFNative),
			string(constants.MethodPDFOCR), string(constants.MethodNone),
		}},
		"degraded":     map[string]any{"type": "boolean"},
		"resolved_via": map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "string"}},
		"diagnostics":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	}
	required := append(constants.AsStringSlice(), "document_id", "path", "candidates", "source", "degraded")

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func sentinelOr(pattern string) map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^(` + constants.NotFound + `|` + pattern + `)$`,
	}
}

func candidateList() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"value":  map[string]any{"type": "string", "minLength": 1},
				"offset": map[string]any{"type": "integer", "minimum": 0},
				"end":    map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []string{"value", "offset", "end"},
		},
	}
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func resultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		b, err := json.Marshal(BuildResultJSONSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("result.json", bytes.NewReader(b)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("result.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateResult checks r against BuildResultJSONSchema.
func ValidateResult(r Result) error {
	schema, err := resultSchema()
	if err != nil {
		return err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidResult, err)
	}
	return nil
}
