package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/entity"
)

// Record schemas (draft 2020-12 subset) used to validate serialized output
// before it leaves the core. Built as generic maps so the delivery layer can
// also publish them.

func buildInvoiceSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"line_items", "currency_detected", "confidence_score"},
		"properties": map[string]any{
			"vendor_name":    stringProp(),
			"customer_name":  stringProp(),
			"invoice_number": stringProp(),
			"po_number":      stringProp(),
			"order_number":   stringProp(),
			"total_amount":   stringProp(),
			"subtotal":       stringProp(),
			"tax_amount":     stringProp(),
			"tax_rate":       stringProp(),
			"invoice_date":   stringProp(),
			"due_date":       stringProp(),
			"vendor_email":   stringProp(),
			"vendor_phone":   stringProp(),
			"vendor_address": stringProp(),
			"payment_terms":  stringProp(),
			"discount_terms": stringProp(),
			"line_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"item_number", "description", "unit_price", "quantity", "amount"},
					"properties": map[string]any{
						"item_number": stringProp(),
						"description": stringProp(),
						"unit_price":  stringProp(),
						"quantity":    stringProp(),
						"amount":      stringProp(),
					},
				},
			},
			"currency_detected": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"confidence_score":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
	}
}

func buildContractSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"contract_type"},
		"properties": map[string]any{
			"parties":         stringListProp(),
			"dates":           stringListProp(),
			"effective_date":  stringProp(),
			"expiration_date": stringProp(),
			"contract_value":  stringProp(),
			"payment_terms":   stringProp(),
			"contract_type":   stringProp(),
		},
	}
}

func buildResumeSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"candidate_name":     stringProp(),
			"email":              stringProp(),
			"phone":              stringProp(),
			"skills":             stringListProp(),
			"education":          stringListProp(),
			"experience_years":   map[string]any{"type": "integer", "minimum": 0},
			"previous_companies": stringListProp(),
			"locations":          stringListProp(),
		},
	}
}

func buildLegalSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"document_type"},
		"properties": map[string]any{
			"parties_involved": stringListProp(),
			"case_numbers":     stringListProp(),
			"court_names":      stringListProp(),
			"legal_dates":      stringListProp(),
			"monetary_amounts": stringListProp(),
			"document_type":    stringProp(),
		},
	}
}

func stringProp() map[string]any { return map[string]any{"type": "string"} }

func stringListProp() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

// compiled once; the schema set is fixed
var recordSchemas = func() map[constants.DocType]*jsonschema.Schema {
	builders := map[constants.DocType]map[string]any{
		constants.DocTypeInvoice:  buildInvoiceSchema(),
		constants.DocTypeContract: buildContractSchema(),
		constants.DocTypeResume:   buildResumeSchema(),
		constants.DocTypeLegal:    buildLegalSchema(),
	}
	out := make(map[constants.DocType]*jsonschema.Schema, len(builders))
	for dt, m := range builders {
		b, err := json.Marshal(m)
		if err != nil {
			panic(fmt.Sprintf("extract: marshal %s schema: %v", dt, err))
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
			panic(fmt.Sprintf("extract: add %s schema: %v", dt, err))
		}
		schema, err := compiler.Compile("schema.json")
		if err != nil {
			panic(fmt.Sprintf("extract: compile %s schema: %v", dt, err))
		}
		out[dt] = schema
	}
	return out
}()

// ValidateRecord checks a record's JSON serialization against the schema for
// its document type. Generic (unknown-type) records have no schema and pass
// as-is.
func ValidateRecord(rec entity.Record) error {
	schema, ok := recordSchemas[rec.DocType()]
	if !ok {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
