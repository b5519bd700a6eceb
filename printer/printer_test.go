package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwathan/lightningcss/printer"
	"github.com/adamwathan/lightningcss/token"
)

// Ensure optional whitespace and newlines are elided when minifying.
func TestPrinter_Whitespace(t *testing.T) {
	var pretty, minified bytes.Buffer

	for _, p := range []*printer.Printer{
		printer.New(&pretty, printer.Options{}),
		printer.New(&minified, printer.Options{Minify: true}),
	} {
		require.NoError(t, p.WriteString("a"))
		require.NoError(t, p.Whitespace())
		require.NoError(t, p.WriteByte('{'))
		p.Indent()
		require.NoError(t, p.Newline())
		require.NoError(t, p.WriteString("color"))
		require.NoError(t, p.Delim(':', false))
		require.NoError(t, p.WriteString("red"))
		p.Dedent()
		require.NoError(t, p.Newline())
		require.NoError(t, p.WriteByte('}'))
	}

	assert.Equal(t, "a {\n  color: red\n}", pretty.String())
	assert.Equal(t, "a{color:red}", minified.String())
}

func TestPrinter_DelimSpaceBefore(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf, printer.Options{})
	require.NoError(t, p.WriteString("a"))
	require.NoError(t, p.Delim('>', true))
	require.NoError(t, p.WriteString("b"))
	assert.Equal(t, "a > b", buf.String())
}

// Ensure mappings record the output offset at the time they are added.
func TestPrinter_Mappings(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf, printer.Options{SourceMap: true})

	p.AddMapping(token.Pos{Char: 0, Line: 0})
	require.NoError(t, p.WriteString("@supports (a: 1) {}"))
	p.AddMapping(token.Pos{Char: 4, Line: 2})

	mappings := p.Mappings()
	require.Len(t, mappings, 2)
	assert.Equal(t, 0, mappings[0].Offset)
	assert.Equal(t, 19, mappings[1].Offset)
	assert.Equal(t, token.Pos{Char: 4, Line: 2}, mappings[1].Pos)
}

// Ensure mappings are not recorded unless enabled.
func TestPrinter_MappingsDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf, printer.Options{})
	p.AddMapping(token.Pos{Char: 1})
	assert.Empty(t, p.Mappings())
}
