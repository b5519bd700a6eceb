// Package property models CSS property identifiers and the vendor-prefix
// spellings that target browsers require for them.
package property

import (
	"fmt"
	"strings"

	"github.com/adamwathan/lightningcss/targets"
)

// ID identifies a CSS property: its canonical (unprefixed, lowercased)
// name plus the set of vendor prefixes it is known under. A freshly parsed
// identifier carries at most one prefix bit; resolving against a browser
// target set may widen the set.
type ID struct {
	Name   string       `json:"property"`
	Prefix VendorPrefix `json:"vendorPrefix,omitempty"`
}

// Parse parses raw property-name text into an identifier. The name must be
// a valid CSS identifier. A recognized leading vendor prefix is split off
// and recorded; custom properties keep their full name.
func Parse(name string) (ID, error) {
	if name == "" {
		return ID{}, fmt.Errorf("empty property name")
	}
	prefix, rest := parsePrefix(name)
	if rest == "" {
		return ID{}, fmt.Errorf("invalid property name %q", name)
	}
	if !strings.HasPrefix(rest, "--") {
		rest = strings.ToLower(rest)
	}
	return ID{Name: rest, Prefix: prefix}, nil
}

// IsCustom reports whether the identifier names a custom property.
func (id ID) IsCustom() bool {
	return strings.HasPrefix(id.Name, "--")
}

// String returns the identifier's source spelling. For an identifier with
// several prefix bits, the first prefix in canonical order is used.
func (id ID) String() string {
	prefix := id.Prefix.OrNone()
	for _, p := range prefix.Prefixes() {
		return p.String() + id.Name
	}
	return id.Name
}

// SetPrefixesForTargets recomputes the identifier's prefix set from the
// compatibility table: the prefixes any targeted browser requires for this
// property, plus the unprefixed spelling. Properties the table does not
// know keep their current prefix set.
func (id *ID) SetPrefixesForTargets(t targets.Browsers) {
	if id.IsCustom() || t.IsEmpty() {
		return
	}
	entries, ok := prefixTable[id.Name]
	if !ok {
		return
	}
	prefix := None
	for _, e := range entries {
		if e.neededFor(t) {
			prefix |= e.prefix
		}
	}
	id.Prefix = prefix
}
