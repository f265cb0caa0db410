package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/ContentRegistry_Go/internal/domain"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const schemaBaseURL = "https://content-registry.local/schemas/"

var printer = message.NewPrinter(language.English)

// ErrSchemaViolation is returned when a content file does not match its category schema.
var ErrSchemaViolation = errors.New("schema validation failed")

// SchemaValidator validates content files against the embedded per-category JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath string, category domain.Category) error
	ValidateBytes(data []byte, category domain.Category) error
}

type validator struct {
	compiler *jsonschema.Compiler
	schemas  map[domain.Category]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator with every embedded schema registered
func NewSchemaValidator() (SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()

	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded schemas: %w", err)
	}

	for _, entry := range entries {
		raw, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", entry.Name(), err)
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", entry.Name(), err)
		}

		if err := compiler.AddResource(schemaBaseURL+entry.Name(), doc); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %w", entry.Name(), err)
		}
	}

	return &validator{
		compiler: compiler,
		schemas:  make(map[domain.Category]*jsonschema.Schema),
	}, nil
}

// SchemaURL returns the identifier of the schema a category is checked against.
func SchemaURL(category domain.Category) string {
	return schemaBaseURL + category.String() + ".schema.json"
}

// ValidateFile validates a JSON file against a category schema
func (v *validator) ValidateFile(dataPath string, category domain.Category) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, category)
}

// ValidateBytes validates JSON data bytes against a category schema
func (v *validator) ValidateBytes(data []byte, category domain.Category) error {
	schema, err := v.loadSchema(category)
	if err != nil {
		return fmt.Errorf("failed to load schema for %s: %w", category, err)
	}

	jsonData, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles a category schema, caching the result
func (v *validator) loadSchema(category domain.Category) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[category]; ok {
		return schema, nil
	}

	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %d", int(category))
	}

	schema, err := v.compiler.Compile(SchemaURL(category))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[category] = schema
	return schema, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects the leaf validation errors
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}

	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed (%s)", location, keywords, err.ErrorKind.LocalizedString(printer))
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
