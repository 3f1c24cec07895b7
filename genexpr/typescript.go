package genexpr

import (
	"fmt"
	"regexp"
	"strings"
)

// tsIdent matches keys that can appear unquoted in object literals.
var tsIdent = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// PrintTypeScript renders an expression as TypeScript source.
func PrintTypeScript(e Expr) string {
	var sb strings.Builder

	printTS(&sb, e, false)

	return sb.String()
}

// printTS writes e to sb. arrowBody marks positions where an object
// literal must be parenthesized to avoid parsing as a block.
func printTS(sb *strings.Builder, e Expr, arrowBody bool) {
	switch n := e.(type) {
	case *StringLit:
		sb.WriteString("'")
		sb.WriteString(escapeTS(n.Value))
		sb.WriteString("'")

	case *NumberLit:
		sb.WriteString(n.Value)

	case *BoolLit:
		fmt.Fprintf(sb, "%t", n.Value)

	case *NullLit:
		sb.WriteString("undefined")

	case *Ident:
		sb.WriteString(n.Name)

	case *Member:
		printTS(sb, n.X, false)

		if tsIdent.MatchString(n.Name) {
			sb.WriteString(".")
			sb.WriteString(n.Name)
		} else {
			sb.WriteString("['")
			sb.WriteString(escapeTS(n.Name))
			sb.WriteString("']")
		}

	case *Index:
		printTS(sb, n.X, false)
		sb.WriteString("[")
		printTS(sb, n.I, false)
		sb.WriteString("]")

	case *Call:
		sb.WriteString(n.Fn)
		sb.WriteString("(")

		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			printTS(sb, arg, false)
		}

		sb.WriteString(")")

	case *Object:
		if arrowBody {
			sb.WriteString("(")
		}

		sb.WriteString("{ ")

		for i, f := range n.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			if tsIdent.MatchString(f.Key) {
				sb.WriteString(f.Key)
			} else {
				sb.WriteString("'")
				sb.WriteString(escapeTS(f.Key))
				sb.WriteString("'")
			}

			sb.WriteString(": ")
			printTS(sb, f.Value, false)
		}

		sb.WriteString(" }")

		if arrowBody {
			sb.WriteString(")")
		}

	case *Array:
		sb.WriteString("[")

		for i, el := range n.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}

			printTS(sb, el, false)
		}

		sb.WriteString("]")

	case *Arrow:
		sb.WriteString("(")
		sb.WriteString(strings.Join(n.Params, ", "))
		sb.WriteString(") => ")
		printTS(sb, n.Body, true)

	case *Ternary:
		printTS(sb, n.Cond, false)
		sb.WriteString(" ? ")
		printTS(sb, n.Then, false)
		sb.WriteString(" : ")
		printTS(sb, n.Else, false)

	case *Cast:
		sb.WriteString("(")
		printTS(sb, n.X, false)
		sb.WriteString(" as ")
		sb.WriteString(n.Type)
		sb.WriteString(")")

	case *Throw:
		sb.WriteString("(() => { throw new Error('")
		sb.WriteString(escapeTS(n.Message))
		sb.WriteString("'); })()")

	case *Raw:
		sb.WriteString(n.Code)
	}
}

func escapeTS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return s
}
