// Where: cli/internal/config/validator.go
// What: Schema validator for grabdeck.yml.
// Why: Reject malformed project configs with actionable errors before launch.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/grabdeck.schema.json
var projectSchemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateProjectConfig checks YAML content against the embedded schema.
func ValidateProjectConfig(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid project config: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("grabdeck.schema.json", bytes.NewReader(projectSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("grabdeck.schema.json")
	})
	return compiledSchema, schemaErr
}
