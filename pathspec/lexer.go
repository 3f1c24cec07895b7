// Package pathspec normalizes user-supplied field references (CSV header
// names and JSONPath-like strings) into a canonical addressing form.
package pathspec

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	tEOF      lexer.TokenType = lexer.EOF
	tText     lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	tString                                 // quoted segment literals
	tDot                                    // .
	tLBracket                               // [
	tRBracket                               // ]
)

// SyntaxError reports an invalid path with the offending position.
type SyntaxError struct {
	msg string
	pos lexer.Position
}

func (e *SyntaxError) Error() string {
	return e.pos.String() + ": " + e.msg
}

func (e *SyntaxError) withPos(pos lexer.Position) *SyntaxError {
	return &SyntaxError{msg: e.msg, pos: pos}
}

// Is matches positioned copies against their sentinel.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)

	return ok && t.msg == e.msg
}

// Path syntax errors.
var (
	ErrUnterminatedQuote = &SyntaxError{msg: "unterminated quoted segment"}
	ErrUnmatchedBracket  = &SyntaxError{msg: "unmatched bracket"}
	ErrEmptySegment      = &SyntaxError{msg: "empty path segment"}
)

// pathDefinition implements lexer.Definition for the path grammar.
// Text runs are everything outside the structural characters, so CSV header
// names with spaces survive as single segments.
type pathDefinition struct {
	symbols map[string]lexer.TokenType
}

func newPathLexer() *pathDefinition {
	return &pathDefinition{
		symbols: map[string]lexer.TokenType{
			"EOF":    tEOF,
			"Text":   tText,
			"String": tString,
			"Dot":    tDot,
			"[":      tLBracket,
			"]":      tRBracket,
		},
	}
}

// Symbols returns the mapping of symbol names to token types.
func (d *pathDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex creates a new Lexer for the given reader.
//
//nolint:ireturn // Required by participle's lexer.Definition interface.
func (d *pathDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return newLexerState(filename, string(data)), nil
}

// LexString implements lexer.StringDefinition for efficiency.
//
//nolint:ireturn // Required by participle's lexer.StringDefinition interface.
func (d *pathDefinition) LexString(filename string, input string) (lexer.Lexer, error) {
	return newLexerState(filename, input), nil
}

// lexerState holds the state for lexing one path string.
type lexerState struct {
	filename string
	input    string
	offset   int
	col      int
}

func newLexerState(filename, input string) *lexerState {
	return &lexerState{filename: filename, input: input, col: 1}
}

// Next returns the next token.
func (l *lexerState) Next() (lexer.Token, error) {
	if l.eof() {
		return lexer.EOFToken(l.pos()), nil
	}

	start := l.pos()
	r := l.peek()

	switch r {
	case '.':
		l.advance()

		return l.token(tDot, start), nil
	case '[':
		l.advance()

		return l.token(tLBracket, start), nil
	case ']':
		l.advance()

		return l.token(tRBracket, start), nil
	case '\'', '"':
		return l.scanString(start, r)
	}

	// Text run: everything up to a structural character. Escaped
	// characters are consumed pairwise so brackets can be embedded.
	for !l.eof() {
		ch := l.peek()
		if ch == '\\' && l.offset+1 < len(l.input) {
			l.advance()
			l.advance()

			continue
		}

		if isStructural(ch) {
			break
		}

		l.advance()
	}

	return l.token(tText, start), nil
}

func (l *lexerState) scanString(start lexer.Position, quote rune) (lexer.Token, error) {
	l.advance() // opening quote

	for !l.eof() {
		ch := l.peek()
		if ch == '\\' && l.offset+1 < len(l.input) {
			l.advance() // backslash
			l.advance() // escaped char

			continue
		}

		if ch == quote {
			l.advance() // closing quote

			return l.token(tString, start), nil
		}

		l.advance()
	}

	return lexer.Token{}, ErrUnterminatedQuote.withPos(start)
}

func (l *lexerState) pos() lexer.Position {
	return lexer.Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     1,
		Column:   l.col,
	}
}

func (l *lexerState) eof() bool {
	return l.offset >= len(l.input)
}

func (l *lexerState) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])

	return r
}

func (l *lexerState) advance() {
	if l.eof() {
		return
	}

	_, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size
	l.col++
}

func (l *lexerState) token(typ lexer.TokenType, start lexer.Position) lexer.Token {
	return lexer.Token{
		Type:  typ,
		Value: l.input[start.Offset:l.offset],
		Pos:   start,
	}
}

// lexAll tokenizes a whole path string.
func lexAll(input string) ([]lexer.Token, error) {
	lx, err := newPathLexer().LexString("", input)
	if err != nil {
		return nil, err
	}

	var tokens []lexer.Token

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}

		if tok.Type == tEOF {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func isStructural(r rune) bool {
	return r == '.' || r == '[' || r == ']' || r == '\'' || r == '"'
}

// unquote strips the surrounding quotes and resolves escapes in a String
// token value.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	return unescape(s[1 : len(s)-1])
}

// unescape resolves backslash escapes in a text run.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}
