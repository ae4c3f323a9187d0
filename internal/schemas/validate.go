// Package schemas provides JSON Schema validation for resume documents and import files.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	embedded "github.com/jonathan/resume-editor/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSON validates a JSON file against a JSON Schema file. It backs the
// validate command when a schema other than the embedded one is given.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(schemaAbsPath)))
	if err != nil {
		return &SchemaLoadError{Path: schemaAbsPath, Message: "failed to compile schema", Cause: err}
	}
	return validateBytes(schema, data)
}

// ValidateJSONString validates JSON content against schema content, both
// held in memory.
func ValidateJSONString(schemaContent, jsonContent string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Path: "(string schema)", Message: "failed to compile schema", Cause: err}
	}
	return validateBytes(schema, []byte(jsonContent))
}

var (
	documentSchemaOnce sync.Once
	documentSchema     *gojsonschema.Schema
	documentSchemaErr  error
)

// ValidateDocument validates serialized resume document bytes against the
// embedded document schema. The compiled schema is cached after first use.
func ValidateDocument(data []byte) error {
	documentSchemaOnce.Do(func() {
		documentSchema, documentSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(embedded.ResumeDocument()))
	})
	if documentSchemaErr != nil {
		return &SchemaLoadError{
			Path:    embedded.ResumeDocumentFile,
			Message: "failed to compile embedded schema",
			Cause:   documentSchemaErr,
		}
	}

	return validateBytes(documentSchema, data)
}

func validateBytes(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The document itself is not valid JSON.
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
