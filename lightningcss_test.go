package lightningcss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwathan/lightningcss"
	"github.com/adamwathan/lightningcss/ast"
	"github.com/adamwathan/lightningcss/printer"
	"github.com/adamwathan/lightningcss/targets"
)

func TestParseCondition(t *testing.T) {
	c, err := lightningcss.ParseCondition(`(display: flex) and (display: grid)`)
	require.NoError(t, err)
	require.IsType(t, &ast.AndCondition{}, c)

	out, err := lightningcss.PrintCondition(c, printer.Options{})
	require.NoError(t, err)
	assert.Equal(t, `(display: flex) and (display: grid)`, out)

	out, err = lightningcss.PrintCondition(c, printer.Options{Minify: true})
	require.NoError(t, err)
	assert.Equal(t, `(display:flex) and (display:grid)`, out)

	_, err = lightningcss.ParseCondition(`foo`)
	require.Error(t, err)
}

func TestTransform(t *testing.T) {
	out, err := lightningcss.Transform(
		"@supports (transform: none) { .a { color: red; } }",
		lightningcss.TransformOptions{},
	)
	require.NoError(t, err)
	assert.Equal(t, "@supports (transform: none) {\n  .a { color: red; }\n}", out)
}

// Ensure targets fan a supported declaration out across the prefixes the
// configured browsers still need.
func TestTransform_Targets(t *testing.T) {
	out, err := lightningcss.Transform(
		"@supports (transform: none){.a{color:red}}",
		lightningcss.TransformOptions{
			Minify:  true,
			Targets: targets.Browsers{Chrome: targets.Version(30, 0, 0)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "@supports ((-webkit-transform:none) or (transform:none)){.a{color:red}}", out)
}

// Ensure supports rules that minified to nothing are dropped.
func TestTransform_DropsEmptyRules(t *testing.T) {
	out, err := lightningcss.Transform(
		"@supports (display: flex) { }",
		lightningcss.TransformOptions{},
	)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestTransform_Error(t *testing.T) {
	_, err := lightningcss.Transform("@supports foo { }", lightningcss.TransformOptions{})
	require.Error(t, err)
}
