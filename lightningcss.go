package lightningcss

import (
	"bytes"
	"strings"

	"github.com/adamwathan/lightningcss/ast"
	"github.com/adamwathan/lightningcss/parser"
	"github.com/adamwathan/lightningcss/printer"
	"github.com/adamwathan/lightningcss/scanner"
	"github.com/adamwathan/lightningcss/targets"
)

// ParseStyleSheet parses CSS text into a stylesheet. @supports at-rules
// are lowered into *ast.SupportsRule with a parsed condition tree.
func ParseStyleSheet(source string) (*ast.StyleSheet, error) {
	return parser.ParseStyleSheet(scanner.New(strings.NewReader(source)))
}

// ParseCondition parses the text of a supports condition, such as the
// prelude of an @supports rule, into a condition tree. The whole input
// must form a single condition.
func ParseCondition(source string) (ast.Condition, error) {
	values, err := parser.ParseComponentValues(scanner.New(strings.NewReader(source)))
	if err != nil {
		return nil, err
	}
	return parser.ParseSupportsCondition(values)
}

// PrintCondition serializes a condition to CSS text.
func PrintCondition(c ast.Condition, opts printer.Options) (string, error) {
	var buf bytes.Buffer
	if err := c.ToCSS(printer.New(&buf, opts)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TransformOptions configures Transform.
type TransformOptions struct {
	// Minify strips optional whitespace from the output.
	Minify bool

	// Targets, when non-empty, resolves vendor prefixes in supports
	// conditions against these browser versions.
	Targets targets.Browsers
}

// Transform parses CSS text, rewrites its @supports rules against the
// configured targets, prunes rules that reduced to nothing, and prints
// the result.
func Transform(source string, opts TransformOptions) (string, error) {
	ss, err := ParseStyleSheet(source)
	if err != nil {
		return "", err
	}
	if err := ss.Rules.Minify(&opts.Targets); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := ss.ToCSS(printer.New(&buf, printer.Options{Minify: opts.Minify})); err != nil {
		return "", err
	}
	return buf.String(), nil
}
