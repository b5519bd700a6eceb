package scanner_test

import (
	"bytes"
	"flag"
	"reflect"
	"testing"

	"github.com/adamwathan/lightningcss/scanner"
	"github.com/adamwathan/lightningcss/token"
)

// testiter sets the table test iteration to run in isolation.
var testiter = flag.Int("test.iter", -1, "table test number")

// Ensure than the scanner returns appropriate tokens and literals.
func TestScanner_Scan(t *testing.T) {
	var tests = []struct {
		s   string
		tok token.Token
		err string
	}{
		{s: ``, tok: token.Token{Type: token.EOF}},
		{s: `   `, tok: token.Token{Type: token.Whitespace, Value: `   `}},

		{s: `""`, tok: token.Token{Type: token.String, Value: ``, Ending: '"'}},
		{s: `"`, tok: token.Token{Type: token.String, Value: ``, Ending: '"'}},
		{s: `"foo`, tok: token.Token{Type: token.String, Value: `foo`, Ending: '"'}},
		{s: `"hello world"`, tok: token.Token{Type: token.String, Value: `hello world`, Ending: '"'}},
		{s: `'hello world'`, tok: token.Token{Type: token.String, Value: `hello world`, Ending: '\''}},
		{s: "'foo\\\nbar'", tok: token.Token{Type: token.String, Value: "foo\nbar", Ending: '\''}},
		{s: `'foo\ bar'`, tok: token.Token{Type: token.String, Value: `foo bar`, Ending: '\''}},
		{s: `'foo\\bar'`, tok: token.Token{Type: token.String, Value: `foo\bar`, Ending: '\''}},
		{s: `'frosty the \2603'`, tok: token.Token{Type: token.String, Value: `frosty the ☃`, Ending: '\''}},
		{s: "\"foo\nbar\"", tok: token.Token{Type: token.BadString}},

		{s: `0`, tok: token.Token{Type: token.Number, Flag: "integer", Value: `0`, Number: 0.0}},
		{s: `1.0`, tok: token.Token{Type: token.Number, Flag: "number", Value: `1.0`, Number: 1.0}},
		{s: `1.123`, tok: token.Token{Type: token.Number, Flag: "number", Value: `1.123`, Number: 1.123}},
		{s: `.001`, tok: token.Token{Type: token.Number, Flag: "number", Value: `.001`, Number: 0.001}},
		{s: `-.001`, tok: token.Token{Type: token.Number, Flag: "number", Value: `-.001`, Number: -0.001}},
		{s: `10000`, tok: token.Token{Type: token.Number, Flag: "integer", Value: `10000`, Number: 10000}},
		{s: `10000.`, tok: token.Token{Type: token.Number, Flag: "integer", Value: `10000`, Number: 10000}},
		{s: `100E`, tok: token.Token{Type: token.Dimension, Flag: "integer", Value: `100E`, Number: 100, Unit: "E"}},
		{s: `100E+`, tok: token.Token{Type: token.Dimension, Flag: "integer", Value: `100E`, Number: 100, Unit: "E"}},
		{s: `100E-`, tok: token.Token{Type: token.Dimension, Flag: "integer", Value: `100E-`, Number: 100, Unit: "E-"}},
		{s: `1E2`, tok: token.Token{Type: token.Number, Flag: "number", Value: `1E2`, Number: 100}},
		{s: `1.5E2`, tok: token.Token{Type: token.Number, Flag: "number", Value: `1.5E2`, Number: 150}},
		{s: `1.5E+2`, tok: token.Token{Type: token.Number, Flag: "number", Value: `1.5E+2`, Number: 150}},
		{s: `1.5E-2`, tok: token.Token{Type: token.Number, Flag: "number", Value: `1.5E-2`, Number: 0.015}},
		{s: `+100`, tok: token.Token{Type: token.Number, Flag: "integer", Value: `+100`, Number: 100}},
		{s: `+1.0`, tok: token.Token{Type: token.Number, Flag: "number", Value: `+1.0`, Number: 1}},
		{s: `-100`, tok: token.Token{Type: token.Number, Flag: "integer", Value: `-100`, Number: -100}},
		{s: `-1.0`, tok: token.Token{Type: token.Number, Flag: "number", Value: `-1.0`, Number: -1}},
		{s: `-`, tok: token.Token{Type: token.Delim, Value: `-`}},

		{s: `url`, tok: token.Token{Type: token.Ident, Value: `url`}},
		{s: `myIdent`, tok: token.Token{Type: token.Ident, Value: `myIdent`}},
		{s: `my\2603`, tok: token.Token{Type: token.Ident, Value: `my☃`}},
		{s: `-moz-appearance`, tok: token.Token{Type: token.Ident, Value: `-moz-appearance`}},
		{s: `--custom-prop`, tok: token.Token{Type: token.Ident, Value: `--custom-prop`}},

		{s: `url(`, tok: token.Token{Type: token.URL, Value: ``}},
		{s: `url(foo`, tok: token.Token{Type: token.URL, Value: `foo`}},
		{s: `url(http://foo.com#bar?baz=bat)`, tok: token.Token{Type: token.URL, Value: `http://foo.com#bar?baz=bat`}},
		{s: `url(  foo`, tok: token.Token{Type: token.URL, Value: `foo`}},
		{s: `url(  foo  `, tok: token.Token{Type: token.URL, Value: `foo`}},
		{s: `url(foo)`, tok: token.Token{Type: token.URL, Value: `foo`}},
		{s: `url("http://foo.com#bar?baz=bat")`, tok: token.Token{Type: token.URL, Value: `http://foo.com#bar?baz=bat`}},
		{s: `url(  "foo"  `, tok: token.Token{Type: token.URL, Value: `foo`}},
		{s: `url("foo")`, tok: token.Token{Type: token.URL, Value: `foo`}},
		{s: `url("foo"x`, tok: token.Token{Type: token.BadURL, Value: ``}},
		{s: `url("foo" x`, tok: token.Token{Type: token.BadURL, Value: ``}},
		{s: `url(foo"`, tok: token.Token{Type: token.BadURL, Value: ``}, err: `invalid url code point: " (U+0022)`},
		{s: `url(foo'`, tok: token.Token{Type: token.BadURL, Value: ``}, err: `invalid url code point: ' (U+0027)`},
		{s: `url(foo(`, tok: token.Token{Type: token.BadURL, Value: ``}, err: `invalid url code point: ( (U+0028)`},
		{s: "url(foo\\\n", tok: token.Token{Type: token.BadURL, Value: ``}, err: `unescaped \ in url`},

		{s: `myFunc(`, tok: token.Token{Type: token.Function, Value: `myFunc`}},
		{s: `selector(`, tok: token.Token{Type: token.Function, Value: `selector`}},

		{s: "u+A", tok: token.Token{Type: token.UnicodeRange, Start: 10, End: 10}},
		{s: "u+00000A", tok: token.Token{Type: token.UnicodeRange, Start: 10, End: 10}},
		{s: "u+1?", tok: token.Token{Type: token.UnicodeRange, Start: 16, End: 31}},
		{s: "u+02-04", tok: token.Token{Type: token.UnicodeRange, Start: 2, End: 4}},

		{s: `100em`, tok: token.Token{Type: token.Dimension, Flag: "integer", Value: `100em`, Number: 100, Unit: "em"}},
		{s: `-1.2in`, tok: token.Token{Type: token.Dimension, Flag: "number", Value: `-1.2in`, Number: -1.2, Unit: "in"}},

		{s: `100%`, tok: token.Token{Type: token.Percentage, Flag: "integer", Value: `100%`, Number: 100}},
		{s: `-0.2%`, tok: token.Token{Type: token.Percentage, Flag: "number", Value: `-0.2%`, Number: -0.2}},

		{s: `#foo`, tok: token.Token{Type: token.Hash, Value: `foo`, Flag: "id"}},
		{s: `#-x`, tok: token.Token{Type: token.Hash, Value: `-x`, Flag: "id"}},
		{s: `#18273`, tok: token.Token{Type: token.Hash, Value: `18273`, Flag: "unrestricted"}},
		{s: `#`, tok: token.Token{Type: token.Delim, Value: `#`}},

		{s: `/`, tok: token.Token{Type: token.Delim, Value: `/`}},
		{s: `/* this is * a comment */#`, tok: token.Token{Type: token.Delim, Value: "#", Pos: token.Pos{Char: 25, Line: 0}}},

		{s: `<`, tok: token.Token{Type: token.Delim, Value: "<"}},
		{s: `<!-`, tok: token.Token{Type: token.Delim, Value: "<"}},
		{s: `<!--`, tok: token.Token{Type: token.CDO}},
		{s: `-->`, tok: token.Token{Type: token.CDC}},

		{s: `@`, tok: token.Token{Type: token.Delim, Value: "@"}},
		{s: `@supports`, tok: token.Token{Type: token.AtKeyword, Value: "supports"}},

		{s: `\2603`, tok: token.Token{Type: token.Ident, Value: "☃"}},
		{s: `\`, tok: token.Token{Type: token.Ident, Value: "�"}},
		{s: `\ `, tok: token.Token{Type: token.Ident, Value: " "}},
		{s: "\\\n", tok: token.Token{Type: token.Delim, Value: `\`}, err: "unescaped \\"},

		{s: `$=`, tok: token.Token{Type: token.SuffixMatch}},
		{s: `$X`, tok: token.Token{Type: token.Delim, Value: `$`}},
		{s: `*=`, tok: token.Token{Type: token.SubstringMatch}},
		{s: `*`, tok: token.Token{Type: token.Delim, Value: `*`}},
		{s: `^=`, tok: token.Token{Type: token.PrefixMatch}},
		{s: `~=`, tok: token.Token{Type: token.IncludeMatch}},
		{s: `|=`, tok: token.Token{Type: token.DashMatch}},
		{s: `||`, tok: token.Token{Type: token.Column}},
		{s: `|`, tok: token.Token{Type: token.Delim, Value: `|`}},

		{s: `,`, tok: token.Token{Type: token.Comma}},
		{s: `:`, tok: token.Token{Type: token.Colon}},
		{s: `;`, tok: token.Token{Type: token.Semicolon}},
		{s: `(`, tok: token.Token{Type: token.LParen}},
		{s: `)`, tok: token.Token{Type: token.RParen}},
		{s: `[`, tok: token.Token{Type: token.LBrack}},
		{s: `]`, tok: token.Token{Type: token.RBrack}},
		{s: `{`, tok: token.Token{Type: token.LBrace}},
		{s: `}`, tok: token.Token{Type: token.RBrace}},
	}

	for i, tt := range tests {
		// Skips over tests if test.iter is set.
		if *testiter > -1 && *testiter != i {
			continue
		}

		// Scan token.
		s := scanner.New(bytes.NewBufferString(tt.s))
		tok := s.Scan()

		// Verify properties.
		if !reflect.DeepEqual(tok, tt.tok) {
			t.Errorf("%d. <%q> tok: => got %#v, want %#v", i, tt.s, tok, tt.tok)
		} else if tt.err != "" {
			if len(s.Errors) == 0 {
				t.Errorf("%d. <%q> error expected", i, tt.s)
			} else if len(s.Errors) > 1 {
				t.Errorf("%d. <%q> too many errors occurred", i, tt.s)
			} else if s.Errors[0].Message != tt.err {
				t.Errorf("%d. <%q> error: got %q, want %q", i, tt.s, s.Errors[0].Message, tt.err)
			}
		} else if tt.err == "" && len(s.Errors) > 0 {
			t.Errorf("%d. <%q> unexpected error: %q", i, tt.s, s.Errors[0].Message)
		}
	}
}

// Ensure the scanner can push a token back and rescan it.
func TestScanner_Unscan(t *testing.T) {
	s := scanner.New(bytes.NewBufferString(`foo:bar`))

	if tok := s.Scan(); tok.Type != token.Ident || tok.Value != "foo" {
		t.Fatalf("unexpected token: %#v", tok)
	}
	if tok := s.Scan(); tok.Type != token.Colon {
		t.Fatalf("unexpected token: %#v", tok)
	}
	s.Unscan()
	if tok := s.Scan(); tok.Type != token.Colon {
		t.Fatalf("unexpected token after unscan: %#v", tok)
	}
	if tok := s.Current(); tok.Type != token.Colon {
		t.Fatalf("unexpected current token: %#v", tok)
	}
	if tok := s.Scan(); tok.Type != token.Ident || tok.Value != "bar" {
		t.Fatalf("unexpected token: %#v", tok)
	}
	if tok := s.Scan(); tok.Type != token.EOF {
		t.Fatalf("expected EOF, got %#v", tok)
	}
}
