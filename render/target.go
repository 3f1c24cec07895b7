// Package render turns IR properties into target-language value
// expressions. It drives the three rendering regimes (single object,
// single-field collection, multi-field aligned collection) over field trees
// and delegates syntax to registered targets.
package render

import (
	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/genexpr"
)

// Helper identifies one of the runtime helper functions the generated
// project ships with. Targets map helpers to their callee names.
type Helper string

// Runtime helpers.
const (
	// HelperParseCollection splits one raw multi-value source into a list
	// of raw string values.
	HelperParseCollection Helper = "parseCollection"

	// HelperApplyDefault substitutes the default for empty raw values.
	// Runs before validation, never after.
	HelperApplyDefault Helper = "applyDefault"

	// HelperCollect maps raw values to instances and collapses an empty
	// input to the absent sentinel, never an empty-but-present collection.
	HelperCollect Helper = "collect"

	// HelperAlign reconciles independently-lengthed value lists by the
	// max-length/broadcast/pad policy and maps each index to an instance.
	HelperAlign Helper = "align"

	// HelperStringify JSON-serializes a record value.
	HelperStringify Helper = "stringify"

	// Scalar conversions.
	HelperToInt64    Helper = "toInt64"
	HelperToDouble   Helper = "toDouble"
	HelperToDateTime Helper = "toDateTime"
	HelperToBoolean  Helper = "toBoolean"

	// Collection conversions.
	HelperToInt64Collection    Helper = "toInt64Collection"
	HelperToDoubleCollection   Helper = "toDoubleCollection"
	HelperToDateTimeCollection Helper = "toDateTimeCollection"

	// Constraint-check wrappers, one per property type family.
	HelperValidateString           Helper = "validateString"
	HelperValidateStringCollection Helper = "validateStringCollection"
	HelperValidateNumber           Helper = "validateNumber"
	HelperValidateNumberCollection Helper = "validateNumberCollection"
)

// Target is a code-generation backend for one output language.
type Target interface {
	// Name returns the target identifier (e.g. "typescript").
	Name() string

	// Print renders an expression tree as source.
	Print(e genexpr.Expr) string

	// RowValue returns the raw access expression reading a binding's
	// address from one input row. Only called for addressed bindings.
	RowValue(b cocogen.SourceBinding, format cocogen.InputFormat) genexpr.Expr

	// Helper returns the callee name for a runtime helper.
	Helper(h Helper) string

	// TypeName maps a graph type name to the target's type identifier.
	TypeName(graphType string) string
}

// Registration for target discovery.
var targets = make(map[string]Target)

// Register registers a target by name.
func Register(t Target) {
	targets[t.Name()] = t
}

// Get returns a target by name, or nil if not registered.
func Get(name string) Target { //nolint:ireturn
	return targets[name]
}

// RegisteredTargets returns the names of all registered targets.
func RegisteredTargets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}

	return names
}
