package genexpr

import (
	"fmt"
	"strings"
)

// PrintCSharp renders an expression as C# source. Object literals print as
// typed initializers when Cast-annotated (fields Pascal-cased per .NET
// convention) and as string-keyed dictionaries otherwise.
func PrintCSharp(e Expr) string {
	var sb strings.Builder

	printCS(&sb, e)

	return sb.String()
}

func printCS(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *StringLit:
		sb.WriteString("\"")
		sb.WriteString(escapeCS(n.Value))
		sb.WriteString("\"")

	case *NumberLit:
		sb.WriteString(n.Value)

	case *BoolLit:
		fmt.Fprintf(sb, "%t", n.Value)

	case *NullLit:
		sb.WriteString("null")

	case *Ident:
		sb.WriteString(n.Name)

	case *Member:
		printCS(sb, n.X)
		sb.WriteString(".")
		sb.WriteString(PascalKey(n.Name))

	case *Index:
		printCS(sb, n.X)
		sb.WriteString("[")
		printCS(sb, n.I)
		sb.WriteString("]")

	case *Call:
		sb.WriteString(n.Fn)
		sb.WriteString("(")

		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			printCS(sb, arg)
		}

		sb.WriteString(")")

	case *Object:
		printCSDictionary(sb, n)

	case *Array:
		sb.WriteString("new[] { ")

		for i, el := range n.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}

			printCS(sb, el)
		}

		sb.WriteString(" }")

	case *Arrow:
		if len(n.Params) == 1 {
			sb.WriteString(n.Params[0])
		} else {
			sb.WriteString("(")
			sb.WriteString(strings.Join(n.Params, ", "))
			sb.WriteString(")")
		}

		sb.WriteString(" => ")
		printCS(sb, n.Body)

	case *Ternary:
		printCS(sb, n.Cond)
		sb.WriteString(" ? ")
		printCS(sb, n.Then)
		sb.WriteString(" : ")
		printCS(sb, n.Else)

	case *Cast:
		if obj, ok := n.X.(*Object); ok {
			printCSInitializer(sb, n.Type, obj)

			return
		}

		sb.WriteString("(")
		sb.WriteString(PascalKey(n.Type))
		sb.WriteString(")(")
		printCS(sb, n.X)
		sb.WriteString(")")

	case *Throw:
		sb.WriteString("((Func<object>)(() => throw new InvalidOperationException(\"")
		sb.WriteString(escapeCS(n.Message))
		sb.WriteString("\")))()")

	case *Raw:
		sb.WriteString(n.Code)
	}
}

// printCSInitializer prints a typed object-initializer expression.
func printCSInitializer(sb *strings.Builder, typeName string, obj *Object) {
	sb.WriteString("new ")
	sb.WriteString(PascalKey(typeName))
	sb.WriteString(" { ")

	for i, f := range obj.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(PascalKey(f.Key))
		sb.WriteString(" = ")
		printCS(sb, f.Value)
	}

	sb.WriteString(" }")
}

// printCSDictionary prints an untyped object as a string-keyed dictionary.
func printCSDictionary(sb *strings.Builder, obj *Object) {
	sb.WriteString("new Dictionary<string, object> { ")

	for i, f := range obj.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString("[\"")
		sb.WriteString(escapeCS(f.Key))
		sb.WriteString("\"] = ")
		printCS(sb, f.Value)
	}

	sb.WriteString(" }")
}

// PascalKey converts a camelCase key or type name to PascalCase.
func PascalKey(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func escapeCS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return s
}
