package genexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wictorwilen/cocogen-sub001/genexpr"
)

func TestPrintTypeScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     genexpr.Expr
		expected string
	}{
		{
			name:     "row index",
			expr:     &genexpr.Index{X: genexpr.Id("row"), I: genexpr.Str("skill level")},
			expected: "row['skill level']",
		},
		{
			name:     "null prints undefined",
			expr:     &genexpr.NullLit{},
			expected: "undefined",
		},
		{
			name: "cast object",
			expr: &genexpr.Cast{
				Type: "SkillProficiency",
				X:    genexpr.ObjectOf(genexpr.Pair("displayName", genexpr.Id("value"))),
			},
			expected: "({ displayName: value } as SkillProficiency)",
		},
		{
			name: "arrow with object body parenthesized",
			expr: &genexpr.Arrow{
				Params: []string{"value"},
				Body:   genexpr.ObjectOf(genexpr.Pair("displayName", genexpr.Id("value"))),
			},
			expected: "(value) => ({ displayName: value })",
		},
		{
			name:     "quoted object key",
			expr:     genexpr.ObjectOf(genexpr.Pair("skill level", genexpr.Num("1"))),
			expected: "{ 'skill level': 1 }",
		},
		{
			name:     "throw stays expression positioned",
			expr:     &genexpr.Throw{Message: "no source mapping for skills"},
			expected: "(() => { throw new Error('no source mapping for skills'); })()",
		},
		{
			name:     "helper call",
			expr:     genexpr.CallOf("valueAt", genexpr.Id("item"), genexpr.Str("user.name")),
			expected: "valueAt(item, 'user.name')",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, genexpr.PrintTypeScript(tt.expr))
		})
	}
}

func TestPrintCSharp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     genexpr.Expr
		expected string
	}{
		{
			name:     "null prints null",
			expr:     &genexpr.NullLit{},
			expected: "null",
		},
		{
			name: "cast object becomes typed initializer",
			expr: &genexpr.Cast{
				Type: "skillProficiency",
				X:    genexpr.ObjectOf(genexpr.Pair("displayName", genexpr.Id("value"))),
			},
			expected: "new SkillProficiency { DisplayName = value }",
		},
		{
			name: "bare object becomes dictionary",
			expr: genexpr.ObjectOf(genexpr.Pair("level", genexpr.Num("3"))),
			expected: `new Dictionary<string, object> { ["level"] = 3 }`,
		},
		{
			name:     "member pascal cased",
			expr:     &genexpr.Member{X: genexpr.Id("item"), Name: "displayName"},
			expected: "item.DisplayName",
		},
		{
			name:     "array literal",
			expr:     &genexpr.Array{Elems: []genexpr.Expr{genexpr.Str("a"), genexpr.Str("b")}},
			expected: `new[] { "a", "b" }`,
		},
		{
			name:     "throw stays expression positioned",
			expr:     &genexpr.Throw{Message: "no source mapping for skills"},
			expected: `((Func<object>)(() => throw new InvalidOperationException("no source mapping for skills")))()`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, genexpr.PrintCSharp(tt.expr))
		})
	}
}
