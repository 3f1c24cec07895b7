// Package typescript registers the TypeScript code-generation target.
package typescript

import (
	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/genexpr"
	"github.com/wictorwilen/cocogen-sub001/render"
)

func init() {
	render.Register(New())
}

// Target emits TypeScript expressions. Runtime helpers are plain camelCase
// functions imported from the generated project's helpers module.
type Target struct{}

// New creates the TypeScript target.
func New() *Target {
	return &Target{}
}

// Name implements render.Target.
func (*Target) Name() string {
	return cocogen.TargetTypeScript
}

// Print implements render.Target.
func (*Target) Print(e genexpr.Expr) string {
	return genexpr.PrintTypeScript(e)
}

// RowValue implements render.Target. CSV rows index by header; every other
// format reads through the valueAt helper with a normalized path.
func (*Target) RowValue(b cocogen.SourceBinding, format cocogen.InputFormat) genexpr.Expr {
	if format.UsesCSVAddressing() {
		return &genexpr.Index{X: genexpr.Id("row"), I: genexpr.Str(b.Address())}
	}

	return genexpr.CallOf("valueAt", genexpr.Id("item"), genexpr.Str(b.Address()))
}

// Helper implements render.Target. Helper identifiers are already the
// TypeScript callee names.
func (*Target) Helper(h render.Helper) string {
	return string(h)
}

// TypeName implements render.Target. Graph type names become PascalCase
// interface names.
func (*Target) TypeName(graphType string) string {
	return genexpr.PascalKey(graphType)
}
