// Package ftl parses Fluent (.ftl) localization resources into a syntax
// tree without evaluating or formatting them. See ast for the tree shape and
// parser for the grammar driver and its options.
package ftl

import (
	"github.com/hlubek/ftlparse/ast"
	"github.com/hlubek/ftlparse/parser"
)

// Parse parses source as a single Fluent resource. It always succeeds: any
// part of source that does not parse as a valid entry is packaged as an
// ast.Junk entry carrying the diagnostic instead of aborting the parse.
func Parse(source string, opts ...parser.Option) *ast.Resource {
	return parser.New(source, opts...).Parse()
}
