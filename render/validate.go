package render

import (
	"strconv"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/genexpr"
)

// composeValidation wraps a parsed value expression in the constraint-check
// helper for the property's type family. Properties without declared
// constraints pass through untouched. The helper receives the value, the
// declared constraints as a literal record, and the property name for error
// reporting.
func composeValidation(t Target, p *cocogen.Property, value genexpr.Expr) genexpr.Expr {
	if !p.HasConstraints() {
		return value
	}

	return composeValidationAs(t, p, value, validationHelper(p.Type))
}

// composeValidationAs is composeValidation with an explicit wrapper family,
// for entity leaves whose family differs from the property's own type.
func composeValidationAs(t Target, p *cocogen.Property, value genexpr.Expr, h Helper) genexpr.Expr {
	if !p.HasConstraints() {
		return value
	}

	return genexpr.CallOf(t.Helper(h),
		value,
		constraintRecord(p),
		genexpr.Str(p.Name),
	)
}

// validationHelper picks the wrapper family: numeric vs string-like, scalar
// vs collection. Date, boolean, and principal values validate through the
// string family since their raw source form is text.
func validationHelper(t cocogen.PropertyType) Helper {
	switch {
	case t.IsNumeric() && t.IsCollection():
		return HelperValidateNumberCollection
	case t.IsNumeric():
		return HelperValidateNumber
	case t.IsCollection():
		return HelperValidateStringCollection
	default:
		return HelperValidateString
	}
}

// constraintRecord builds the literal record of declared constraints, in a
// fixed field order so regenerated output stays diff-stable.
func constraintRecord(p *cocogen.Property) *genexpr.Object {
	var fields []genexpr.ObjectField

	if p.Pattern != "" {
		fields = append(fields, genexpr.Pair("pattern", genexpr.Str(p.Pattern)))

		if p.PatternMessage != "" {
			fields = append(fields, genexpr.Pair("message", genexpr.Str(p.PatternMessage)))
		}
	}

	if p.Format != "" {
		fields = append(fields, genexpr.Pair("format", genexpr.Str(p.Format)))
	}

	if p.MinLength != nil {
		fields = append(fields, genexpr.Pair("minLength", genexpr.Num(strconv.Itoa(*p.MinLength))))
	}

	if p.MaxLength != nil {
		fields = append(fields, genexpr.Pair("maxLength", genexpr.Num(strconv.Itoa(*p.MaxLength))))
	}

	if p.MinValue != nil {
		fields = append(fields, genexpr.Pair("minValue", genexpr.Num(formatFloat(*p.MinValue))))
	}

	if p.MaxValue != nil {
		fields = append(fields, genexpr.Pair("maxValue", genexpr.Num(formatFloat(*p.MaxValue))))
	}

	return genexpr.ObjectOf(fields...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
