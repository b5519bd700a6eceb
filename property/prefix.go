package property

import "strings"

// VendorPrefix is a bit set of vendor prefixes for a property name.
// A property identifier may carry several bits at once after it has been
// resolved against a browser target set.
type VendorPrefix uint8

const (
	WebKit VendorPrefix = 1 << iota
	Moz
	Ms
	O
	// None is the unprefixed spelling.
	None
)

// Contains reports whether p includes the given prefix bit.
func (p VendorPrefix) Contains(other VendorPrefix) bool {
	return p&other != 0
}

// OrNone returns p unchanged unless it is empty, in which case None.
func (p VendorPrefix) OrNone() VendorPrefix {
	if p == 0 {
		return None
	}
	return p
}

// Prefixes returns the individual prefix bits of p in canonical order:
// vendor prefixes first (-webkit-, -moz-, -ms-, -o-), the unprefixed
// spelling last.
func (p VendorPrefix) Prefixes() []VendorPrefix {
	var a []VendorPrefix
	for bit := WebKit; bit <= None; bit <<= 1 {
		if p.Contains(bit) {
			a = append(a, bit)
		}
	}
	return a
}

// String returns the source spelling of a single prefix bit.
func (p VendorPrefix) String() string {
	switch p {
	case WebKit:
		return "-webkit-"
	case Moz:
		return "-moz-"
	case Ms:
		return "-ms-"
	case O:
		return "-o-"
	}
	return ""
}

// parsePrefix splits a leading vendor prefix off a property name. Custom
// properties ("--foo") are never treated as prefixed.
func parsePrefix(name string) (VendorPrefix, string) {
	if !strings.HasPrefix(name, "-") || strings.HasPrefix(name, "--") {
		return 0, name
	}
	lower := strings.ToLower(name)
	for _, p := range []VendorPrefix{WebKit, Moz, Ms, O} {
		if strings.HasPrefix(lower, p.String()) {
			return p, name[len(p.String()):]
		}
	}
	return 0, name
}
