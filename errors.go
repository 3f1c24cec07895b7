package cocogen

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .cocogen.yaml is found.
	ErrConfigNotFound = errors.New("cocogen: no .cocogen.yaml found")

	// ErrUnknownInputFormat is returned for an input format outside the closed set.
	ErrUnknownInputFormat = errors.New("cocogen: unknown input format")

	// ErrUnknownEntityKind is returned for a people-entity kind outside the fixed catalog.
	ErrUnknownEntityKind = errors.New("cocogen: unknown entity kind")

	// ErrUnknownIDEncoding is returned for an item id encoding outside slug/base64/hash.
	ErrUnknownIDEncoding = errors.New("cocogen: unknown id encoding")
)

// SchemaError reports a fatal schema-shape or binding problem detected while
// building the IR. It always names the offending model or property so the
// caller can point at the schema source.
type SchemaError struct {
	// Model is the schema model the error was detected on.
	Model string

	// Property is the schema property the error was detected on, if any.
	Property string

	// Msg describes the problem.
	Msg string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Model != "" && e.Property != "":
		return fmt.Sprintf("cocogen: %s.%s: %s", e.Model, e.Property, e.Msg)
	case e.Model != "":
		return fmt.Sprintf("cocogen: %s: %s", e.Model, e.Msg)
	default:
		return "cocogen: " + e.Msg
	}
}

// NewSchemaError creates a SchemaError for a model-level problem.
func NewSchemaError(model, msg string) *SchemaError {
	return &SchemaError{Model: model, Msg: msg}
}

// NewPropertyError creates a SchemaError for a property-level problem.
func NewPropertyError(model, property, msg string) *SchemaError {
	return &SchemaError{Model: model, Property: property, Msg: msg}
}
