// Package genexpr models target-language source expressions as a small AST
// with one pretty-printer per output language. Renderers build trees and
// compare them structurally in tests; string assembly happens only at print
// time.
package genexpr

// Expr is a target-language expression node.
type Expr interface {
	isExpr()
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

// NumberLit is a numeric literal, kept verbatim.
type NumberLit struct {
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

// NullLit is the target's "absent" literal (undefined in TypeScript, null
// in C#).
type NullLit struct{}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

// Member is a property access on an expression.
type Member struct {
	X    Expr
	Name string
}

// Index is a computed element access.
type Index struct {
	X Expr
	I Expr
}

// Call invokes a callee with arguments.
type Call struct {
	Fn   string
	Args []Expr
}

// ObjectField is one key/value pair of an object literal.
type ObjectField struct {
	Key   string
	Value Expr
}

// Object is an object/record literal with ordered fields.
type Object struct {
	Fields []ObjectField
}

// Array is an array literal.
type Array struct {
	Elems []Expr
}

// Arrow is a single-expression lambda.
type Arrow struct {
	Params []string
	Body   Expr
}

// Ternary is a conditional expression.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Cast annotates an expression with a declared type. TypeScript prints an
// `as` assertion; C# prints a typed record construction for object
// literals and a conversion otherwise.
type Cast struct {
	Type string
	X    Expr
}

// Throw is a guaranteed-failing placeholder that stays expression-
// positioned (printed as an immediately-invoked throwing closure).
type Throw struct {
	Message string
}

// Raw is verbatim target-language source. Escape hatch; prefer structured
// nodes.
type Raw struct {
	Code string
}

func (*StringLit) isExpr() {}
func (*NumberLit) isExpr() {}
func (*BoolLit) isExpr()   {}
func (*NullLit) isExpr()   {}
func (*Ident) isExpr()     {}
func (*Member) isExpr()    {}
func (*Index) isExpr()     {}
func (*Call) isExpr()      {}
func (*Object) isExpr()    {}
func (*Array) isExpr()     {}
func (*Arrow) isExpr()     {}
func (*Ternary) isExpr()   {}
func (*Cast) isExpr()      {}
func (*Throw) isExpr()     {}
func (*Raw) isExpr()       {}

// Constructors for the common cases.

// Str creates a string literal.
func Str(v string) *StringLit {
	return &StringLit{Value: v}
}

// Num creates a numeric literal from its source form.
func Num(v string) *NumberLit {
	return &NumberLit{Value: v}
}

// Id creates an identifier reference.
func Id(name string) *Ident {
	return &Ident{Name: name}
}

// CallOf creates a call expression.
func CallOf(fn string, args ...Expr) *Call {
	return &Call{Fn: fn, Args: args}
}

// ObjectOf creates an object literal from alternating pairs.
func ObjectOf(fields ...ObjectField) *Object {
	return &Object{Fields: fields}
}

// Pair creates one object field.
func Pair(key string, value Expr) ObjectField {
	return ObjectField{Key: key, Value: value}
}
