package parser

import (
	"fmt"
	"strings"

	"github.com/adamwathan/lightningcss/ast"
	"github.com/adamwathan/lightningcss/property"
	"github.com/adamwathan/lightningcss/token"
)

// ParseSupportsCondition parses condition text, e.g. the prelude of an
// @supports rule, into a condition tree. The whole input must be consumed.
func ParseSupportsCondition(values ast.ComponentValues) (ast.Condition, error) {
	cur := &valueCursor{values: values}
	c, err := parseSupportsCondition(cur)
	if err != nil {
		return nil, err
	}
	cur.skipWhitespace()
	if !cur.atEnd() {
		return nil, &Error{Message: fmt.Sprintf("unexpected %q in supports condition", cur.peek().String()), Pos: valuePos(cur.peek())}
	}
	return c, nil
}

// parseSupportsCondition parses a condition at the current cursor
// position. A "not" wraps a single in-parens condition and never combines
// with sibling operators. Otherwise the first operator keyword fixes the
// list type; a conflicting keyword stops accumulation without error,
// leaving the keyword and its operand unconsumed for the caller.
func parseSupportsCondition(cur *valueCursor) (ast.Condition, error) {
	cur.skipWhitespace()
	if tok, ok := cur.peekIdent(); ok && strings.EqualFold(tok.Value, "not") {
		cur.next()
		inner, err := parseConditionInParens(cur)
		if err != nil {
			return nil, err
		}
		return &ast.NotCondition{Inner: inner}, nil
	}

	first, err := parseConditionInParens(cur)
	if err != nil {
		return nil, err
	}

	var conditions []ast.Condition
	var operator string
	for {
		mark := cur.save()
		cur.skipWhitespace()
		tok, ok := cur.peekIdent()
		if !ok {
			cur.restore(mark)
			break
		}
		op := strings.ToLower(tok.Value)
		if (op != "and" && op != "or") || (operator != "" && op != operator) {
			cur.restore(mark)
			break
		}
		cur.next()

		operand, err := parseConditionInParens(cur)
		if err != nil {
			cur.restore(mark)
			break
		}

		operator = op
		if len(conditions) == 0 {
			// Lazy list materialization: a bare single operand never
			// becomes a list.
			conditions = append(conditions, first)
		}
		conditions = append(conditions, operand)
	}

	switch operator {
	case "and":
		return &ast.AndCondition{Conditions: conditions}, nil
	case "or":
		return &ast.OrCondition{Conditions: conditions}, nil
	}
	return first, nil
}

// parseConditionInParens parses one parenthesized-or-function unit. Text
// that matches no known sub-grammar degrades to an UnknownCondition as
// long as it is free of error tokens; any other leading token is a hard
// syntax error.
func parseConditionInParens(cur *valueCursor) (ast.Condition, error) {
	cur.skipWhitespace()
	v := cur.next()
	if v == nil {
		return nil, &Error{Message: "unexpected end of supports condition", Pos: cur.lastPos}
	}

	switch v := v.(type) {
	case *ast.Function:
		if containsErrorToken(v.Values) {
			return nil, &Error{Message: "invalid token in supports condition", Pos: v.Pos}
		}
		if strings.EqualFold(v.Name, "selector") {
			return &ast.SelectorCondition{Selector: v.Values.String()}, nil
		}
		return &ast.UnknownCondition{Raw: v.String()}, nil

	case *ast.SimpleBlock:
		if v.Token.Type != token.LParen {
			return nil, &Error{Message: fmt.Sprintf("unexpected %q in supports condition", v.String()), Pos: v.Pos}
		}

		// Try a full nested condition first; it must consume the whole
		// block to count.
		inner := &valueCursor{values: v.Values}
		if c, err := parseSupportsCondition(inner); err == nil {
			inner.skipWhitespace()
			if inner.atEnd() {
				return c, nil
			}
		}

		// Then a single declaration.
		if d, err := parseSupportsDeclaration(v.Values); err == nil {
			return d, nil
		}

		// Otherwise preserve the block verbatim.
		if containsErrorToken(v.Values) {
			return nil, &Error{Message: "invalid token in supports condition", Pos: v.Pos}
		}
		return &ast.UnknownCondition{Raw: v.String()}, nil

	default:
		tok := v.(*ast.Token)
		return nil, &Error{Message: fmt.Sprintf("unexpected %q in supports condition", tok.String()), Pos: tok.Tok.Pos}
	}
}

// parseSupportsDeclaration parses the contents of a parenthesis block as a
// single "property: value" test. The value is captured verbatim up to the
// end of the block.
func parseSupportsDeclaration(values ast.ComponentValues) (ast.Condition, error) {
	cur := &valueCursor{values: values}
	cur.skipWhitespace()

	tok, ok := cur.peekIdent()
	if !ok {
		return nil, &Error{Message: "expected property name", Pos: cur.lastPos}
	}
	id, err := property.Parse(tok.Value)
	if err != nil {
		return nil, &Error{Message: err.Error(), Pos: tok.Pos}
	}
	cur.next()

	cur.skipWhitespace()
	colon, ok := cur.peek().(*ast.Token)
	if !ok || colon.Tok.Type != token.Colon {
		return nil, &Error{Message: "expected colon in supports declaration", Pos: valuePos(cur.peek())}
	}
	cur.next()

	cur.skipWhitespace()
	rest := ast.ComponentValues(cur.values[cur.i:])
	if containsErrorToken(rest) {
		return nil, &Error{Message: "invalid token in supports declaration value", Pos: tok.Pos}
	}
	return &ast.DeclarationCondition{Property: id, Value: rest.String()}, nil
}

// containsErrorToken reports whether values contain a bad-string or
// bad-url token at any depth.
func containsErrorToken(values ast.ComponentValues) bool {
	for _, v := range values {
		switch v := v.(type) {
		case *ast.Token:
			if v.Tok.Type == token.BadString || v.Tok.Type == token.BadURL {
				return true
			}
		case *ast.SimpleBlock:
			if containsErrorToken(v.Values) {
				return true
			}
		case *ast.Function:
			if containsErrorToken(v.Values) {
				return true
			}
		}
	}
	return false
}

// --- @supports lowering ------------------------------------------------

// lowerRules rewrites @supports at-rules in the list into SupportsRules,
// recursing into nested blocks. A rule whose prelude is not a valid
// condition is left as a generic at-rule and reported as a syntax error.
func (p *parser) lowerRules(rules ast.Rules) {
	for i, r := range rules {
		at, ok := r.(*ast.AtRule)
		if !ok || !strings.EqualFold(at.Name, "supports") || at.Block == nil {
			continue
		}
		if sr := p.lowerSupportsRule(at); sr != nil {
			rules[i] = sr
		}
	}
}

func (p *parser) lowerSupportsRule(at *ast.AtRule) *ast.SupportsRule {
	cond, err := ParseSupportsCondition(at.Prelude)
	if err != nil {
		p.errors = append(p.errors, err)
		return nil
	}

	nested := p.consumeRules(NewValueScanner(at.Block.Values), false)
	p.lowerRules(nested)

	return &ast.SupportsRule{Condition: cond, Rules: nested, Pos: at.Pos}
}

// --- component-value cursor --------------------------------------------

// valueCursor is a cursor over component values with save/restore, so a
// failed tentative parse has no observable side effect.
type valueCursor struct {
	values  ast.ComponentValues
	i       int
	lastPos token.Pos
}

func (c *valueCursor) atEnd() bool {
	return c.i >= len(c.values)
}

// peek returns the upcoming value without consuming it, or nil at the end.
func (c *valueCursor) peek() ast.ComponentValue {
	if c.atEnd() {
		return nil
	}
	return c.values[c.i]
}

// peekIdent returns the upcoming value as an ident token, if it is one.
func (c *valueCursor) peekIdent() (token.Token, bool) {
	tok, ok := c.peek().(*ast.Token)
	if !ok || tok.Tok.Type != token.Ident {
		return token.Token{}, false
	}
	return tok.Tok, true
}

// next consumes and returns the upcoming value, or nil at the end.
func (c *valueCursor) next() ast.ComponentValue {
	v := c.peek()
	if v != nil {
		c.lastPos = valuePos(v)
		c.i++
	}
	return v
}

func (c *valueCursor) skipWhitespace() {
	for {
		tok, ok := c.peek().(*ast.Token)
		if !ok || tok.Tok.Type != token.Whitespace {
			return
		}
		c.next()
	}
}

// save returns a checkpoint of the cursor position.
func (c *valueCursor) save() int {
	return c.i
}

// restore rewinds the cursor to a checkpoint.
func (c *valueCursor) restore(mark int) {
	c.i = mark
}

// valuePos returns the source position of a component value.
func valuePos(v ast.ComponentValue) token.Pos {
	switch v := v.(type) {
	case *ast.Token:
		return v.Tok.Pos
	case *ast.SimpleBlock:
		return v.Pos
	case *ast.Function:
		return v.Pos
	}
	return token.Pos{}
}

// --- value flattening --------------------------------------------------

// NewValueScanner flattens component values back into a token stream so a
// raw block can be reparsed with the rule grammar.
func NewValueScanner(values ast.ComponentValues) *TokenScanner {
	return NewTokenScanner(flattenValues(values, nil))
}

func flattenValues(values ast.ComponentValues, out []token.Token) []token.Token {
	for _, v := range values {
		switch v := v.(type) {
		case *ast.Token:
			out = append(out, v.Tok)
		case *ast.SimpleBlock:
			out = append(out, v.Token)
			out = flattenValues(v.Values, out)
			switch v.Token.Type {
			case token.LBrace:
				out = append(out, token.Token{Type: token.RBrace})
			case token.LBrack:
				out = append(out, token.Token{Type: token.RBrack})
			default:
				out = append(out, token.Token{Type: token.RParen})
			}
		case *ast.Function:
			out = append(out, token.Token{Type: token.Function, Value: v.Name, Pos: v.Pos})
			out = flattenValues(v.Values, out)
			out = append(out, token.Token{Type: token.RParen})
		}
	}
	return out
}
