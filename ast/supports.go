package ast

import (
	"bytes"

	"github.com/adamwathan/lightningcss/printer"
	"github.com/adamwathan/lightningcss/property"
	"github.com/adamwathan/lightningcss/targets"
	"github.com/adamwathan/lightningcss/token"
)

// Condition is a node in a @supports feature-test expression tree.
//
// A condition tree is exclusively owned: callers must not retain aliases
// into a tree while it is being combined or expanded.
type Condition interface {
	condition()
	// Equal reports structural equality: same variant, recursively
	// equal payload.
	Equal(other Condition) bool
	String() string
	ToCSS(dest *printer.Printer) error
}

func (_ *NotCondition) condition()         {}
func (_ *AndCondition) condition()         {}
func (_ *OrCondition) condition()          {}
func (_ *DeclarationCondition) condition() {}
func (_ *SelectorCondition) condition()    {}
func (_ *UnknownCondition) condition()     {}

// NotCondition negates one sub-condition.
type NotCondition struct {
	Inner Condition
}

// AndCondition is a conjunction of two or more sub-conditions.
// The parser and the combinators never produce a list shorter than two.
type AndCondition struct {
	Conditions []Condition
}

// OrCondition is a disjunction of two or more sub-conditions.
type OrCondition struct {
	Conditions []Condition
}

// DeclarationCondition tests support for a property: value pair. The value
// is kept verbatim and never validated.
type DeclarationCondition struct {
	Property property.ID
	Value    string
}

// SelectorCondition tests support for a selector, e.g. selector(:has(a)).
// The selector text is kept verbatim.
type SelectorCondition struct {
	Selector string
}

// UnknownCondition preserves condition text that matched no known
// sub-grammar but was token-balanced and free of error tokens.
type UnknownCondition struct {
	Raw string
}

// --- Structural equality -----------------------------------------------

func (c *NotCondition) Equal(other Condition) bool {
	o, ok := other.(*NotCondition)
	return ok && c.Inner.Equal(o.Inner)
}

func (c *AndCondition) Equal(other Condition) bool {
	o, ok := other.(*AndCondition)
	return ok && conditionsEqual(c.Conditions, o.Conditions)
}

func (c *OrCondition) Equal(other Condition) bool {
	o, ok := other.(*OrCondition)
	return ok && conditionsEqual(c.Conditions, o.Conditions)
}

func (c *DeclarationCondition) Equal(other Condition) bool {
	o, ok := other.(*DeclarationCondition)
	return ok && c.Property == o.Property && c.Value == o.Value
}

func (c *SelectorCondition) Equal(other Condition) bool {
	o, ok := other.(*SelectorCondition)
	return ok && c.Selector == o.Selector
}

func (c *UnknownCondition) Equal(other Condition) bool {
	o, ok := other.(*UnknownCondition)
	return ok && c.Raw == o.Raw
}

func conditionsEqual(a, b []Condition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func contains(a []Condition, c Condition) bool {
	for _, item := range a {
		if item.Equal(c) {
			return true
		}
	}
	return false
}

// --- Combinators -------------------------------------------------------

// And merges b into the condition at cond with an "and" expression.
// Merging a condition with itself is a no-op, and a conjunction never
// accumulates two structurally equal members.
func And(cond *Condition, b Condition) {
	if (*cond).Equal(b) {
		return
	}
	if a, ok := (*cond).(*AndCondition); ok {
		if !contains(a.Conditions, b) {
			a.Conditions = append(a.Conditions, b)
		}
	} else {
		*cond = &AndCondition{Conditions: []Condition{*cond, b}}
	}
}

// Or merges b into the condition at cond with an "or" expression.
func Or(cond *Condition, b Condition) {
	if (*cond).Equal(b) {
		return
	}
	if a, ok := (*cond).(*OrCondition); ok {
		if !contains(a.Conditions, b) {
			a.Conditions = append(a.Conditions, b)
		}
	} else {
		*cond = &OrCondition{Conditions: []Condition{*cond, b}}
	}
}

// --- Prefix expansion --------------------------------------------------

// SetPrefixesForTargets walks the tree and widens the prefix set of every
// declaration whose property is unprefixed (or carries only the plain
// spelling) to cover what the targeted browsers require. The tree shape is
// untouched; the fan-out materializes at print time.
func SetPrefixesForTargets(c Condition, t targets.Browsers) {
	switch c := c.(type) {
	case *NotCondition:
		SetPrefixesForTargets(c.Inner, t)
	case *AndCondition:
		for _, item := range c.Conditions {
			SetPrefixesForTargets(item, t)
		}
	case *OrCondition:
		for _, item := range c.Conditions {
			SetPrefixesForTargets(item, t)
		}
	case *DeclarationCondition:
		if c.Property.Prefix == 0 || c.Property.Prefix.Contains(property.None) {
			c.Property.SetPrefixesForTargets(t)
		}
	}
}

// --- Serialization -----------------------------------------------------

// needsParens reports whether c must be parenthesized when printed as a
// direct child of parent. Negations always need parens; a conjunction or
// disjunction needs them unless the parent is the same list kind; leaves
// are self-delimiting.
func needsParens(c, parent Condition) bool {
	switch c.(type) {
	case *NotCondition:
		return true
	case *AndCondition:
		_, ok := parent.(*AndCondition)
		return !ok
	case *OrCondition:
		_, ok := parent.(*OrCondition)
		return !ok
	}
	return false
}

func toCSSWithParensIfNeeded(c Condition, dest *printer.Printer, parens bool) error {
	if parens {
		if err := dest.WriteByte('('); err != nil {
			return err
		}
	}
	if err := c.ToCSS(dest); err != nil {
		return err
	}
	if parens {
		return dest.WriteByte(')')
	}
	return nil
}

func (c *NotCondition) ToCSS(dest *printer.Printer) error {
	if err := dest.WriteString("not "); err != nil {
		return err
	}
	return toCSSWithParensIfNeeded(c.Inner, dest, needsParens(c.Inner, c))
}

func (c *AndCondition) ToCSS(dest *printer.Printer) error {
	return listToCSS(c.Conditions, c, " and ", dest)
}

func (c *OrCondition) ToCSS(dest *printer.Printer) error {
	return listToCSS(c.Conditions, c, " or ", dest)
}

func listToCSS(items []Condition, parent Condition, sep string, dest *printer.Printer) error {
	for i, item := range items {
		if i > 0 {
			if err := dest.WriteString(sep); err != nil {
				return err
			}
		}
		if err := toCSSWithParensIfNeeded(item, dest, needsParens(item, parent)); err != nil {
			return err
		}
	}
	return nil
}

func (c *DeclarationCondition) ToCSS(dest *printer.Printer) error {
	if err := dest.WriteByte('('); err != nil {
		return err
	}

	prefix := c.Property.Prefix.OrNone()
	multi := prefix != property.None
	if multi {
		if err := dest.WriteByte('('); err != nil {
			return err
		}
	}

	for i, p := range prefix.Prefixes() {
		if i > 0 {
			if err := dest.WriteString(") or ("); err != nil {
				return err
			}
		}
		if err := dest.WriteString(p.String() + c.Property.Name); err != nil {
			return err
		}
		if err := dest.Delim(':', false); err != nil {
			return err
		}
		if err := dest.WriteString(c.Value); err != nil {
			return err
		}
	}

	if multi {
		if err := dest.WriteByte(')'); err != nil {
			return err
		}
	}
	return dest.WriteByte(')')
}

func (c *SelectorCondition) ToCSS(dest *printer.Printer) error {
	if err := dest.WriteString("selector("); err != nil {
		return err
	}
	if err := dest.WriteString(c.Selector); err != nil {
		return err
	}
	return dest.WriteByte(')')
}

func (c *UnknownCondition) ToCSS(dest *printer.Printer) error {
	return dest.WriteString(c.Raw)
}

func conditionString(c Condition) string {
	var buf bytes.Buffer
	_ = c.ToCSS(printer.New(&buf, printer.Options{}))
	return buf.String()
}

func (c *NotCondition) String() string         { return conditionString(c) }
func (c *AndCondition) String() string         { return conditionString(c) }
func (c *OrCondition) String() string          { return conditionString(c) }
func (c *DeclarationCondition) String() string { return conditionString(c) }
func (c *SelectorCondition) String() string    { return conditionString(c) }
func (c *UnknownCondition) String() string     { return conditionString(c) }

// --- SupportsRule ------------------------------------------------------

// SupportsRule gates a block of rules behind a feature-test condition.
type SupportsRule struct {
	Condition Condition
	Rules     Rules
	Pos       token.Pos
}

func (_ *SupportsRule) node() {}
func (_ *SupportsRule) rule() {}

// Minify resolves vendor prefixes against the configured targets and then
// minifies the nested rule list. Errors from the rule list propagate
// unchanged.
func (r *SupportsRule) Minify(t *targets.Browsers) error {
	if t != nil && !t.IsEmpty() {
		SetPrefixesForTargets(r.Condition, *t)
	}
	return r.Rules.Minify(t)
}

func (r *SupportsRule) String() string {
	var buf bytes.Buffer
	_ = r.ToCSS(printer.New(&buf, printer.Options{}))
	return buf.String()
}

func (r *SupportsRule) ToCSS(dest *printer.Printer) error {
	dest.AddMapping(r.Pos)
	if err := dest.WriteString("@supports "); err != nil {
		return err
	}
	if err := r.Condition.ToCSS(dest); err != nil {
		return err
	}
	if err := dest.Whitespace(); err != nil {
		return err
	}
	if err := dest.WriteByte('{'); err != nil {
		return err
	}
	dest.Indent()
	if err := dest.Newline(); err != nil {
		return err
	}
	if err := r.Rules.ToCSS(dest); err != nil {
		return err
	}
	dest.Dedent()
	if err := dest.Newline(); err != nil {
		return err
	}
	return dest.WriteByte('}')
}

// Minify applies target-driven rewrites to every rule in the list and
// drops rules that minified to nothing, mutating the list in place.
func (a *Rules) Minify(t *targets.Browsers) error {
	rules := (*a)[:0]
	for _, r := range *a {
		switch r := r.(type) {
		case *SupportsRule:
			if err := r.Minify(t); err != nil {
				return err
			}
			if len(r.Rules) == 0 {
				continue
			}
		case *QualifiedRule:
			if r.Block == nil || isBlank(r.Block.Values) {
				continue
			}
		}
		rules = append(rules, r)
	}
	*a = rules
	return nil
}

// isBlank reports whether values contain only whitespace tokens.
func isBlank(values ComponentValues) bool {
	for _, v := range values {
		tok, ok := v.(*Token)
		if !ok || tok.Tok.Type != token.Whitespace {
			return false
		}
	}
	return true
}
