// Package csharp registers the C# code-generation target.
package csharp

import (
	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/genexpr"
	"github.com/wictorwilen/cocogen-sub001/render"
)

func init() {
	render.Register(New())
}

// Target emits C# expressions. Runtime helpers live on a static Helpers
// class in the generated project.
type Target struct{}

// New creates the C# target.
func New() *Target {
	return &Target{}
}

// Name implements render.Target.
func (*Target) Name() string {
	return cocogen.TargetCSharp
}

// Print implements render.Target.
func (*Target) Print(e genexpr.Expr) string {
	return genexpr.PrintCSharp(e)
}

// RowValue implements render.Target. CSV rows index by header; every other
// format reads through the Helpers.ValueAt accessor with a normalized path.
func (*Target) RowValue(b cocogen.SourceBinding, format cocogen.InputFormat) genexpr.Expr {
	if format.UsesCSVAddressing() {
		return &genexpr.Index{X: genexpr.Id("row"), I: genexpr.Str(b.Address())}
	}

	return genexpr.CallOf("Helpers.ValueAt", genexpr.Id("item"), genexpr.Str(b.Address()))
}

// Helper implements render.Target.
func (*Target) Helper(h render.Helper) string {
	return "Helpers." + genexpr.PascalKey(string(h))
}

// TypeName implements render.Target.
func (*Target) TypeName(graphType string) string {
	return genexpr.PascalKey(graphType)
}
