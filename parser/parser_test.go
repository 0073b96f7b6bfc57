package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlubek/ftlparse/ast"
)

func parseResource(t *testing.T, source string, opts ...Option) *ast.Resource {
	t.Helper()
	res := New(source, opts...).Parse()
	require.NotNil(t, res)
	return res
}

func TestParseSimpleMessage(t *testing.T) {
	res := parseResource(t, "hello = Hello, world!\n")
	require.Len(t, res.Body, 1)
	msg, ok := res.Body[0].(*ast.Message)
	require.True(t, ok)
	assert.Equal(t, "hello", msg.ID.Name)
	require.Len(t, msg.Value.Elements, 1)
	text, ok := msg.Value.Elements[0].(*ast.TextElement)
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", text.Value)
}

func TestParseTermWithAttributeAndReference(t *testing.T) {
	source := "-brand =\n    Firefox\n    .gender = masculine\nabout = { -brand.gender ->\n   *[masculine] His {-brand}\n    [feminine] Her {-brand}\n}\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 2)

	term, ok := res.Body[0].(*ast.Term)
	require.True(t, ok)
	assert.Equal(t, "brand", term.ID.Name)
	require.Len(t, term.Attributes, 1)
	assert.Equal(t, "gender", term.Attributes[0].ID.Name)

	msg, ok := res.Body[1].(*ast.Message)
	require.True(t, ok)
	placeable, ok := msg.Value.Elements[0].(*ast.Placeable)
	require.True(t, ok)
	sel, ok := placeable.Expression.(*ast.SelectExpression)
	require.True(t, ok)
	termRef, ok := sel.Selector.(*ast.TermReference)
	require.True(t, ok)
	require.NotNil(t, termRef.Attribute)
	assert.Equal(t, "gender", termRef.Attribute.Name)
	require.Len(t, sel.Variants, 2)
	assert.True(t, sel.Variants[0].Default)
}

func TestParseBlockPatternDedent(t *testing.T) {
	source := "multiline =\n    First line\n    Second line\n        Indented more\n"
	res := parseResource(t, source)
	msg := res.Body[0].(*ast.Message)
	require.Len(t, msg.Value.Elements, 1)
	text := msg.Value.Elements[0].(*ast.TextElement)
	assert.Equal(t, "First line\nSecond line\n    Indented more", text.Value)
}

func TestParseSelectExpressionRequiresDefaultVariant(t *testing.T) {
	source := "n = { $count ->\n    [one] One\n    [other] Many\n}\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 1)
	junk, ok := res.Body[0].(*ast.Junk)
	require.True(t, ok)
	require.Len(t, junk.Annotations, 1)
	assert.Equal(t, E0010, junk.Annotations[0].Code)
}

func TestParseUnterminatedStringProducesJunk(t *testing.T) {
	source := "broken = { \"unterminated\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 1)
	junk, ok := res.Body[0].(*ast.Junk)
	require.True(t, ok)
	require.Len(t, junk.Annotations, 1)
	assert.Equal(t, E0020, junk.Annotations[0].Code)
	assert.Equal(t, source, junk.Content)
}

func TestParseRecoversAfterJunkAndContinuesWithNextEntry(t *testing.T) {
	source := "broken = { \"unterminated\ngood = Fine\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 2)
	_, isJunk := res.Body[0].(*ast.Junk)
	assert.True(t, isJunk)
	msg, ok := res.Body[1].(*ast.Message)
	require.True(t, ok)
	assert.Equal(t, "good", msg.ID.Name)
}

func TestParseStandaloneCommentAttachesToFollowingMessage(t *testing.T) {
	source := "# A greeting\nhello = Hi!\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 1)
	msg, ok := res.Body[0].(*ast.Message)
	require.True(t, ok)
	require.NotNil(t, msg.Comment)
	assert.Equal(t, "A greeting", msg.Comment.Content)
}

func TestParseCommentFollowedByBlankLineDoesNotAttach(t *testing.T) {
	source := "# A greeting\n\nhello = Hi!\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 2)
	comment, ok := res.Body[0].(*ast.Comment)
	require.True(t, ok)
	assert.Equal(t, "A greeting", comment.Content)
	msg, ok := res.Body[1].(*ast.Message)
	require.True(t, ok)
	assert.Nil(t, msg.Comment)
}

func TestParseGroupAndResourceCommentsNeverAttach(t *testing.T) {
	source := "## Group\nhello = Hi!\n### Resource\nworld = Bye!\n"
	res := parseResource(t, source)
	require.Len(t, res.Body, 4)
	_, ok := res.Body[0].(*ast.GroupComment)
	require.True(t, ok)
	msg, ok := res.Body[1].(*ast.Message)
	require.True(t, ok)
	assert.Nil(t, msg.Comment)
	_, ok = res.Body[2].(*ast.ResourceComment)
	require.True(t, ok)
}

func TestParseSpansAreByteOffsetsNotRuneIndices(t *testing.T) {
	source := "hello = Héllo\n"
	res := parseResource(t, source, WithSpans(true))
	msg := res.Body[0].(*ast.Message)
	text := msg.Value.Elements[0].(*ast.TextElement)
	require.NotNil(t, text.NodeSpan)
	// "Héllo" spans bytes [8,14) because 'é' occupies two UTF-8 bytes, even
	// though it is a single rune.
	assert.Equal(t, uint(8), text.NodeSpan.Start)
	assert.Equal(t, uint(14), text.NodeSpan.End)
}

func TestParseWithoutSpansLeavesSpanNil(t *testing.T) {
	res := parseResource(t, "hello = Hi!\n")
	msg := res.Body[0].(*ast.Message)
	assert.Nil(t, msg.NodeSpan)
}

func TestParseFunctionReferenceRequiresUpperCaseName(t *testing.T) {
	res := parseResource(t, "n = { NUMBER($count) }\n")
	msg := res.Body[0].(*ast.Message)
	placeable := msg.Value.Elements[0].(*ast.Placeable)
	fn, ok := placeable.Expression.(*ast.FunctionReference)
	require.True(t, ok)
	assert.Equal(t, "NUMBER", fn.ID.Name)
	require.Len(t, fn.Arguments.Positional, 1)
}

func TestParseLowerCaseFunctionNameIsJunk(t *testing.T) {
	res := parseResource(t, "n = { number($count) }\n")
	junk, ok := res.Body[0].(*ast.Junk)
	require.True(t, ok)
	assert.Equal(t, E0008, junk.Annotations[0].Code)
}

func TestParseNamedArgumentsMustFollowPositional(t *testing.T) {
	res := parseResource(t, "n = { FOO(a: \"x\", $y) }\n")
	junk, ok := res.Body[0].(*ast.Junk)
	require.True(t, ok)
	assert.Equal(t, E0021, junk.Annotations[0].Code)
}

func TestParseDuplicateNamedArgumentIsJunk(t *testing.T) {
	res := parseResource(t, "n = { FOO(a: \"x\", a: \"y\") }\n")
	junk, ok := res.Body[0].(*ast.Junk)
	require.True(t, ok)
	assert.Equal(t, E0022, junk.Annotations[0].Code)
}
