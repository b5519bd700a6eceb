// Package ast defines the CSS3 abstract syntax tree, including the
// @supports condition model.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adamwathan/lightningcss/printer"
	"github.com/adamwathan/lightningcss/token"
)

// Node represents a node in the CSS3 abstract syntax tree.
type Node interface {
	node()
	String() string
	ToCSS(dest *printer.Printer) error
}

func (_ *StyleSheet) node()     {}
func (_ Rules) node()           {}
func (_ *AtRule) node()         {}
func (_ *QualifiedRule) node()  {}
func (_ Declarations) node()    {}
func (_ *Declaration) node()    {}
func (_ ComponentValues) node() {}
func (_ *SimpleBlock) node()    {}
func (_ *Function) node()       {}
func (_ *Token) node()          {}

// StyleSheet represents a top-level CSS3 stylesheet.
type StyleSheet struct {
	Rules Rules
}

func (s *StyleSheet) String() string {
	var buf bytes.Buffer
	for _, r := range s.Rules {
		buf.WriteString(r.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

// ToCSS serializes the stylesheet, one rule per line in pretty mode.
func (s *StyleSheet) ToCSS(dest *printer.Printer) error {
	for i, r := range s.Rules {
		if i > 0 {
			if err := dest.Newline(); err != nil {
				return err
			}
		}
		if err := r.ToCSS(dest); err != nil {
			return err
		}
	}
	return nil
}

// Rules represents a list of rules.
type Rules []Rule

func (a Rules) String() string {
	var buf bytes.Buffer
	for i, r := range a {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(r.String())
	}
	return buf.String()
}

func (a Rules) ToCSS(dest *printer.Printer) error {
	for i, r := range a {
		if i > 0 {
			if err := dest.Newline(); err != nil {
				return err
			}
		}
		if err := r.ToCSS(dest); err != nil {
			return err
		}
	}
	return nil
}

// Rule represents a qualified rule or at-rule.
type Rule interface {
	Node
	rule()
}

func (_ *AtRule) rule()        {}
func (_ *QualifiedRule) rule() {}

// AtRule represents a rule starting with an "@" symbol.
type AtRule struct {
	Name    string
	Prelude ComponentValues
	Block   *SimpleBlock
	Pos     token.Pos
}

func (r *AtRule) String() string {
	var buf bytes.Buffer
	buf.WriteString("@" + r.Name)
	if prelude := strings.TrimSpace(r.Prelude.String()); prelude != "" {
		buf.WriteString(" " + prelude)
	}
	if r.Block != nil {
		buf.WriteString(" " + r.Block.String())
	} else {
		buf.WriteString(";")
	}
	return buf.String()
}

func (r *AtRule) ToCSS(dest *printer.Printer) error {
	dest.AddMapping(r.Pos)
	if err := dest.WriteString("@" + r.Name); err != nil {
		return err
	}
	if prelude := strings.TrimSpace(r.Prelude.String()); prelude != "" {
		if err := dest.WriteString(" " + prelude); err != nil {
			return err
		}
	}
	if r.Block == nil {
		return dest.WriteByte(';')
	}
	if err := dest.Whitespace(); err != nil {
		return err
	}
	return r.Block.ToCSS(dest)
}

// QualifiedRule represents an unnamed rule that includes a prelude and block.
type QualifiedRule struct {
	Prelude ComponentValues
	Block   *SimpleBlock
	Pos     token.Pos
}

func (r *QualifiedRule) String() string {
	return r.Prelude.String() + r.Block.String()
}

func (r *QualifiedRule) ToCSS(dest *printer.Printer) error {
	dest.AddMapping(r.Pos)
	if prelude := strings.TrimSpace(r.Prelude.String()); prelude != "" {
		if err := dest.WriteString(prelude); err != nil {
			return err
		}
		if err := dest.Whitespace(); err != nil {
			return err
		}
	}
	if r.Block == nil {
		return nil
	}
	return r.Block.ToCSS(dest)
}

// Declarations represents a list of declarations or at-rules.
type Declarations []Node

func (a Declarations) String() string {
	var buf bytes.Buffer
	for i, d := range a {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(d.String())
		buf.WriteString(";")
	}
	return buf.String()
}

func (a Declarations) ToCSS(dest *printer.Printer) error {
	for i, d := range a {
		if i > 0 {
			if err := dest.Newline(); err != nil {
				return err
			}
		}
		if err := d.ToCSS(dest); err != nil {
			return err
		}
		if err := dest.WriteByte(';'); err != nil {
			return err
		}
	}
	return nil
}

// Declaration represents a name/value pair.
type Declaration struct {
	Name      string
	Values    ComponentValues
	Important bool
	Pos       token.Pos
}

func (d *Declaration) String() string {
	s := d.Name + ": " + strings.TrimSpace(d.Values.String())
	if d.Important {
		s += " !important"
	}
	return s
}

func (d *Declaration) ToCSS(dest *printer.Printer) error {
	if err := dest.WriteString(d.Name); err != nil {
		return err
	}
	if err := dest.Delim(':', false); err != nil {
		return err
	}
	if err := dest.WriteString(strings.TrimSpace(d.Values.String())); err != nil {
		return err
	}
	if d.Important {
		if err := dest.Whitespace(); err != nil {
			return err
		}
		return dest.WriteString("!important")
	}
	return nil
}

// ComponentValues represents a list of component values.
type ComponentValues []ComponentValue

func (a ComponentValues) String() string {
	var buf bytes.Buffer
	for _, v := range a {
		buf.WriteString(v.String())
	}
	return buf.String()
}

func (a ComponentValues) ToCSS(dest *printer.Printer) error {
	for _, v := range a {
		// Collapse whitespace runs to a single space when minifying.
		if tok, ok := v.(*Token); ok && tok.Tok.Type == token.Whitespace && dest.Minify() {
			if err := dest.WriteByte(' '); err != nil {
				return err
			}
			continue
		}
		if err := v.ToCSS(dest); err != nil {
			return err
		}
	}
	return nil
}

// ComponentValue represents a component value.
type ComponentValue interface {
	Node
	componentValue()
}

func (_ *SimpleBlock) componentValue() {}
func (_ *Function) componentValue()    {}
func (_ *Token) componentValue()       {}

// SimpleBlock represents a {-block, [-block, or (-block.
type SimpleBlock struct {
	Token  token.Token
	Values ComponentValues
	Pos    token.Pos
}

func (b *SimpleBlock) String() string {
	switch b.Token.Type {
	case token.LBrace:
		return "{" + b.Values.String() + "}"
	case token.LBrack:
		return "[" + b.Values.String() + "]"
	case token.LParen:
		return "(" + b.Values.String() + ")"
	}
	return "<>"
}

func (b *SimpleBlock) ToCSS(dest *printer.Printer) error {
	opener, closer := byte('{'), byte('}')
	switch b.Token.Type {
	case token.LBrack:
		opener, closer = '[', ']'
	case token.LParen:
		opener, closer = '(', ')'
	}
	if err := dest.WriteByte(opener); err != nil {
		return err
	}
	if err := b.Values.ToCSS(dest); err != nil {
		return err
	}
	return dest.WriteByte(closer)
}

// Function represents a function call with a list of arguments.
type Function struct {
	Name   string
	Values ComponentValues
	Pos    token.Pos
}

func (f *Function) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, f.Values.String())
}

func (f *Function) ToCSS(dest *printer.Printer) error {
	if err := dest.WriteString(f.Name + "("); err != nil {
		return err
	}
	if err := f.Values.ToCSS(dest); err != nil {
		return err
	}
	return dest.WriteByte(')')
}

// Token represents a single token in the AST.
type Token struct {
	Tok token.Token
}

func (t *Token) String() string {
	return t.Tok.String()
}

func (t *Token) ToCSS(dest *printer.Printer) error {
	return dest.WriteString(t.Tok.String())
}
