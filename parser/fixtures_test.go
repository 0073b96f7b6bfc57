package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlubek/ftlparse/ast"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../testdata/fixtures/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestFixtureSampleHasNoJunk(t *testing.T) {
	source := readFixture(t, "sample.ftl")
	resource := New(source).Parse()
	for _, entry := range resource.Body {
		if junk, ok := entry.(*ast.Junk); ok {
			t.Fatalf("unexpected junk: %+v", junk.Annotations)
		}
	}
	assert.NotEmpty(t, resource.Body)
}

func TestFixtureWithJunkReportsExactlyOneJunkEntry(t *testing.T) {
	source := readFixture(t, "with_junk.ftl")
	resource := New(source).Parse()

	var junkEntries, messages int
	for _, entry := range resource.Body {
		switch entry.(type) {
		case *ast.Junk:
			junkEntries++
		case *ast.Message:
			messages++
		}
	}
	assert.Equal(t, 1, junkEntries)
	assert.Equal(t, 2, messages)
}
