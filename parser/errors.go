package parser

import "fmt"

// Error codes recognized by the parser. Only the codes this grammar actually
// raises are defined; the remaining codes in the E0001-E0029 range belong to
// other parts of the wider Fluent toolchain (e.g. resolver-time errors) and
// have no home in this syntax-only parser.
const (
	E0002 = "E0002" // expected an entry
	E0003 = "E0003" // expected a specific character
	E0004 = "E0004" // expected a character from a class
	E0005 = "E0005" // message has no value and no attributes
	E0006 = "E0006" // term requires a value
	E0008 = "E0008" // function name must be upper-case
	E0009 = "E0009" // named argument name must be a simple identifier
	E0010 = "E0010" // select expression requires a default variant
	E0011 = "E0011" // select expression requires at least one variant
	E0012 = "E0012" // pattern required
	E0013 = "E0013" // variant key required
	E0014 = "E0014" // expected a literal
	E0015 = "E0015" // only one default variant is allowed
	E0016 = "E0016" // message reference may not be used as a selector
	E0017 = "E0017" // term reference without an attribute may not be a selector
	E0018 = "E0018" // message attribute reference may not be used as a selector
	E0019 = "E0019" // term attributes may only be referenced from a selector
	E0020 = "E0020" // unterminated string literal
	E0021 = "E0021" // positional arguments may not follow named ones
	E0022 = "E0022" // duplicate named argument
	E0025 = "E0025" // unknown escape sequence
	E0026 = "E0026" // malformed unicode escape sequence
	E0027 = "E0027" // unbalanced '}'
	E0028 = "E0028" // expected an inline expression
	E0029 = "E0029" // a placeable may not be used as a selector
)

var messages = map[string]string{
	E0002: "expected an entry start",
	E0003: "expected token: %q",
	E0004: "expected a character from the range: %q",
	E0005: "message %q has no value and no attributes",
	E0006: "term %q requires a value",
	E0008: "function names must be all upper-case",
	E0009: "named argument name must be a simple identifier",
	E0010: "the select expression requires a default variant",
	E0011: "the select expression requires at least one variant",
	E0012: "expected a pattern",
	E0013: "expected a variant key",
	E0014: "expected a literal",
	E0015: "only one variant may be marked as default",
	E0016: "message references may not be used as selectors",
	E0017: "term references without an attribute may not be used as selectors",
	E0018: "message attribute references may not be used as selectors",
	E0019: "term attributes may only be used inside a selector",
	E0020: "unterminated string literal",
	E0021: "positional arguments must not follow named arguments",
	E0022: "the argument named %q was already given",
	E0025: "unknown escape sequence",
	E0026: "invalid unicode escape sequence",
	E0027: "unexpected token: %q",
	E0028: "expected an inline expression",
	E0029: "placeables may not be used as selectors",
}

// Error is a single recoverable parse-grammar failure: a code, its format
// arguments, and the byte index at which it was observed. It never escapes
// Parser.Parse; the entry boundary recovery logic turns it into an
// ast.Annotation on an ast.Junk entry instead.
type Error struct {
	Code  string
	Args  []string
	Index uint
}

func newError(code string, index uint, args ...string) *Error {
	return &Error{Code: code, Args: args, Index: index}
}

// Error implements the error interface with the human-readable message for
// this error code; the wording is stable but not part of the public
// contract (spec leaves it implementation-defined).
func (e *Error) Error() string {
	return e.Message()
}

// Message renders the human-readable text for this error.
func (e *Error) Message() string {
	format, ok := messages[e.Code]
	if !ok {
		return e.Code
	}
	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		args[i] = a
	}
	return fmt.Sprintf(format, args...)
}
