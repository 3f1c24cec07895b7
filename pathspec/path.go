package pathspec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrUnexpectedToken is wrapped into a SyntaxError when segments abut
// without a separator (e.g. `'a'b`).
var ErrUnexpectedToken = &SyntaxError{msg: "unexpected segment"}

// ErrEmptyPath is returned for an all-whitespace path.
var ErrEmptyPath = &SyntaxError{msg: "empty path"}

// StepKind discriminates path steps.
type StepKind string

// Step kinds.
const (
	StepProp  StepKind = "prop"
	StepIndex StepKind = "index"
)

// Step is one element of a parsed path: either a property access or an
// array index. Wildcard indices normalize to index 0 but keep the Wildcard
// flag so array roots stay detectable.
type Step struct {
	Kind     StepKind
	Prop     string
	Index    int
	Wildcard bool
}

// Path is an ordered list of steps, optionally anchored at the explicit
// `$` root marker.
type Path struct {
	Rooted bool
	Steps  []Step
}

// identSegment matches segments that render unbracketed in canonical form.
var identSegment = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse splits a dotted/bracketed field reference into ordered steps.
// Quoted literals and escaped characters keep structural characters inside a
// single segment; an unmatched bracket or quote is a hard SyntaxError.
func Parse(raw string) (*Path, error) {
	tokens, err := lexAll(raw)
	if err != nil {
		return nil, err
	}

	p := &Path{}
	i := 0

	// Leading root marker.
	if len(tokens) > 0 && tokens[0].Type == tText && strings.TrimSpace(tokens[0].Value) == "$" {
		p.Rooted = true
		i++
	}

	afterSep := true

	for i < len(tokens) {
		tok := tokens[i]

		switch tok.Type {
		case tDot:
			if afterSep && len(p.Steps) > 0 {
				return nil, ErrEmptySegment.withPos(tok.Pos)
			}

			afterSep = true
			i++

		case tText, tString:
			if !afterSep {
				return nil, ErrUnexpectedToken.withPos(tok.Pos)
			}

			step, err := textStep(tok)
			if err != nil {
				return nil, err
			}

			if step != nil {
				p.Steps = append(p.Steps, *step)
			}

			afterSep = false
			i++

		case tLBracket:
			step, next, err := bracketStep(tokens, i)
			if err != nil {
				return nil, err
			}

			p.Steps = append(p.Steps, step)
			afterSep = false
			i = next

		case tRBracket:
			return nil, ErrUnmatchedBracket.withPos(tok.Pos)

		default:
			return nil, ErrUnexpectedToken.withPos(tok.Pos)
		}
	}

	if !p.Rooted && len(p.Steps) == 0 {
		return nil, ErrEmptyPath
	}

	return p, nil
}

// textStep converts a top-level text or string token into a step. A bare
// `*` is a wildcard index; whitespace-only text between separators is an
// empty segment.
func textStep(tok lexer.Token) (*Step, error) {
	var value string
	if tok.Type == tString {
		value = unquote(tok.Value)
	} else {
		value = strings.TrimSpace(unescape(tok.Value))
	}

	if value == "*" {
		return &Step{Kind: StepIndex, Index: 0, Wildcard: true}, nil
	}

	if value == "" {
		if tok.Type == tString {
			return nil, ErrEmptySegment.withPos(tok.Pos)
		}

		// Whitespace runs around structural characters are dropped.
		return nil, nil //nolint:nilnil // absent step, not an error
	}

	return &Step{Kind: StepProp, Prop: value}, nil
}

// bracketStep parses one bracketed step starting at tokens[start] (the `[`).
// Dots inside brackets do not split segments; the body is joined verbatim
// unless it is a single quoted literal, an integer, or `*`.
func bracketStep(tokens []lexer.Token, start int) (Step, int, error) {
	open := tokens[start]
	i := start + 1

	var (
		body strings.Builder
		n    int
	)

	for ; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Type == tRBracket {
			if n == 1 && tokens[start+1].Type == tString {
				q := unquote(tokens[start+1].Value)
				if q == "" {
					return Step{}, 0, ErrEmptySegment.withPos(open.Pos)
				}

				return Step{Kind: StepProp, Prop: q}, i + 1, nil
			}

			text := strings.TrimSpace(body.String())
			switch {
			case text == "*":
				return Step{Kind: StepIndex, Index: 0, Wildcard: true}, i + 1, nil
			case text == "":
				return Step{}, 0, ErrEmptySegment.withPos(open.Pos)
			default:
				if idx, err := strconv.Atoi(text); err == nil {
					return Step{Kind: StepIndex, Index: idx}, i + 1, nil
				}

				return Step{Kind: StepProp, Prop: unescape(text)}, i + 1, nil
			}
		}

		body.WriteString(tok.Value)
		n++
	}

	return Step{}, 0, ErrUnmatchedBracket.withPos(open.Pos)
}

// String renders the canonical form: bare identifier-like segments as
// `.name`, anything else as a bracketed single-quoted literal, indices as
// `[n]`. Wildcards print as index 0. The rendering is idempotent under
// Parse.
func (p *Path) String() string {
	var sb strings.Builder

	if p.Rooted {
		sb.WriteString("$")
	}

	for _, step := range p.Steps {
		switch step.Kind {
		case StepIndex:
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(step.Index))
			sb.WriteString("]")

		case StepProp:
			if identSegment.MatchString(step.Prop) {
				if sb.Len() > 0 {
					sb.WriteString(".")
				}

				sb.WriteString(step.Prop)
			} else {
				sb.WriteString("['")
				sb.WriteString(escapeQuoted(step.Prop))
				sb.WriteString("']")
			}
		}
	}

	return sb.String()
}

// escapeQuoted escapes backslashes and single quotes for a bracketed
// literal.
func escapeQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)

	return strings.ReplaceAll(s, `'`, `\'`)
}

// Normalize parses raw and renders the canonical form.
// normalize(normalize(x)) == normalize(x) for every valid x.
func Normalize(raw string) (string, error) {
	p, err := Parse(raw)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}

// AssertValid fails with a SyntaxError when bracket or quote nesting is
// unbalanced.
func AssertValid(raw string) error {
	_, err := Parse(raw)

	return err
}

// IsArrayRoot reports whether the path addresses elements of a root-level
// array (its first step is an index or wildcard).
func (p *Path) IsArrayRoot() bool {
	return len(p.Steps) > 0 && p.Steps[0].Kind == StepIndex
}

// HasWildcard reports whether any step is a wildcard index.
func (p *Path) HasWildcard() bool {
	for _, s := range p.Steps {
		if s.Wildcard {
			return true
		}
	}

	return false
}

// Keys returns the property names of all prop steps in order.
func (p *Path) Keys() []string {
	keys := make([]string, 0, len(p.Steps))

	for _, s := range p.Steps {
		if s.Kind == StepProp {
			keys = append(keys, s.Prop)
		}
	}

	return keys
}

// CommonPrefix computes the longest common dotted token prefix shared by
// the given paths, used to auto-qualify bare child paths that implicitly
// share an array root. Paths anchored at an explicit array or root marker
// are skipped, as are single-token paths. This is a best-effort inference
// over sibling field paths, not a semantic guarantee: unrelated paths that
// happen to share leading tokens will match.
func CommonPrefix(paths []string) string {
	var parents [][]string

	for _, raw := range paths {
		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "$") || strings.HasPrefix(t, "[") {
			continue
		}

		tokens := strings.Split(t, ".")
		if len(tokens) < 2 {
			continue
		}

		parents = append(parents, tokens[:len(tokens)-1])
	}

	if len(parents) == 0 {
		return ""
	}

	prefix := parents[0]
	for _, p := range parents[1:] {
		prefix = commonTokens(prefix, p)
	}

	if len(prefix) == 0 {
		return ""
	}

	return strings.Join(prefix, ".")
}

func commonTokens(a, b []string) []string {
	n := min(len(a), len(b))

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
