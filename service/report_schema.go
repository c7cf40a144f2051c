package service

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ludo-technologies/archscan/domain"
)

//go:embed schema/validation-result.schema.json
var validationResultSchemaJSON string

const validationResultSchemaURL = "https://archscan.dev/schemas/validation-result.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ValidationResultSchema returns the compiled JSON schema of persisted reports
func ValidationResultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(validationResultSchemaURL, strings.NewReader(validationResultSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile(validationResultSchemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidateReportJSON checks an encoded report against the schema
func ValidateReportJSON(data []byte) error {
	schema, err := ValidationResultSchema()
	if err != nil {
		return domain.NewSchemaError("failed to compile report schema", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.NewSchemaError("report is not valid JSON", err)
	}
	if err := schema.Validate(doc); err != nil {
		return domain.NewSchemaError("report does not match schema", err)
	}
	return nil
}
