package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validator checks decoded JSON documents against one compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile compiles schemaStr under the given resource name.
func Compile(name, schemaStr string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(name, strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", name, err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", name, err)
	}

	return &Validator{schema: schema}, nil
}

// MustCompile is like Compile but panics on an invalid schema.
// It is meant for schemas embedded in the binary.
func MustCompile(name, schemaStr string) *Validator {
	v, err := Compile(name, schemaStr)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks an already decoded document.
// It returns nil when the document is valid.
func (v *Validator) Validate(doc interface{}) ValidationErrors {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return extractValidationErrors(validationErr)
	}
	return ValidationErrors{err}
}

// ValidateJSON decodes data and validates it.
// A decoding failure is returned as a plain error, a schema violation as
// ValidationErrors.
func (v *Validator) ValidateJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if errs := v.Validate(doc); len(errs) > 0 {
		return errs
	}
	return nil
}

// extractValidationErrors flattens a jsonschema.ValidationError tree
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors

	// Leaf causes carry the useful messages; the root only names the schema
	if len(err.Causes) == 0 && err.Message != "" {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		errors = append(errors, fmt.Errorf("validation error at %s: %s", location, err.Message))
	}

	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	return errors
}
