package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescapeLiteralEscapes(t *testing.T) {
	assert.Equal(t, `\`, Unescape(`\\`))
	assert.Equal(t, `"`, Unescape(`\"`))
	assert.Equal(t, `a\b`, Unescape(`a\\b`))
}

func TestUnescapeUnicode(t *testing.T) {
	assert.Equal(t, "A", Unescape("\\u0041"))
	assert.Equal(t, "€", Unescape("\\u20AC"))
	assert.Equal(t, "😀", Unescape(`\U01F600`))
}

func TestUnescapeMalformedProducesReplacementChar(t *testing.T) {
	assert.Equal(t, "�", Unescape(`\u12`))
	assert.Equal(t, "�", Unescape(`\uZZZZ`))
	assert.Equal(t, "�", Unescape(`\q`))
	assert.Equal(t, "�", Unescape(`\`))
}

func TestUnescapeRejectsSurrogatesAndOutOfRange(t *testing.T) {
	assert.Equal(t, "�", Unescape(`\uD800`))
	assert.Equal(t, "�", Unescape(`\U110000`))
}

func TestUnescapePassesThroughPlainText(t *testing.T) {
	assert.Equal(t, "hello world", Unescape("hello world"))
}
