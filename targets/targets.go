// Package targets describes the set of browser runtimes that transformed
// CSS must support. Versions are encoded as major.minor.patch packed into
// a uint32, with zero meaning "not targeted".
package targets

import (
	"fmt"
	"strconv"
	"strings"
)

// Browsers is a set of minimum targeted browser versions.
type Browsers struct {
	Android uint32
	Chrome  uint32
	Edge    uint32
	Firefox uint32
	IE      uint32
	IOSSaf  uint32
	Opera   uint32
	Safari  uint32
	Samsung uint32
}

// Version packs a major.minor.patch triple into its uint32 encoding.
func Version(major, minor, patch int) uint32 {
	return uint32(major)<<16 | uint32(minor)<<8 | uint32(patch)
}

// ParseVersion parses a "major[.minor[.patch]]" version string.
func ParseVersion(s string) (uint32, error) {
	parts := strings.SplitN(s, ".", 3)
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return 0, fmt.Errorf("invalid version %q", s)
		}
		nums[i] = n
	}
	return Version(nums[0], nums[1], nums[2]), nil
}

// FormatVersion renders the uint32 encoding back to a dotted string,
// omitting trailing zero components.
func FormatVersion(v uint32) string {
	major, minor, patch := v>>16&0xff, v>>8&0xff, v&0xff
	if patch != 0 {
		return fmt.Sprintf("%d.%d.%d", major, minor, patch)
	}
	if minor != 0 {
		return fmt.Sprintf("%d.%d", major, minor)
	}
	return strconv.Itoa(int(major))
}

// IsEmpty reports whether no browser is targeted.
func (b Browsers) IsEmpty() bool {
	return b == Browsers{}
}

// Set assigns the version for a browser by name. Recognized names follow
// browserslist conventions ("chrome", "firefox", "safari", "ios_saf", ...).
func (b *Browsers) Set(name string, version uint32) error {
	switch strings.ToLower(name) {
	case "android":
		b.Android = version
	case "chrome":
		b.Chrome = version
	case "edge":
		b.Edge = version
	case "firefox":
		b.Firefox = version
	case "ie":
		b.IE = version
	case "ios_saf", "ios":
		b.IOSSaf = version
	case "opera":
		b.Opera = version
	case "safari":
		b.Safari = version
	case "samsung":
		b.Samsung = version
	default:
		return fmt.Errorf("unknown browser %q", name)
	}
	return nil
}

// Get returns the targeted version for a browser by name, or zero.
func (b Browsers) Get(name string) uint32 {
	switch strings.ToLower(name) {
	case "android":
		return b.Android
	case "chrome":
		return b.Chrome
	case "edge":
		return b.Edge
	case "firefox":
		return b.Firefox
	case "ie":
		return b.IE
	case "ios_saf", "ios":
		return b.IOSSaf
	case "opera":
		return b.Opera
	case "safari":
		return b.Safari
	case "samsung":
		return b.Samsung
	}
	return 0
}

// Parse builds a browser set from a comma-separated list of
// "name version" entries, e.g. "chrome 90, safari 13.2".
func Parse(s string) (Browsers, error) {
	var b Browsers
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			return Browsers{}, fmt.Errorf("invalid target %q", entry)
		}
		v, err := ParseVersion(fields[1])
		if err != nil {
			return Browsers{}, fmt.Errorf("invalid target %q: %w", entry, err)
		}
		if err := b.Set(fields[0], v); err != nil {
			return Browsers{}, err
		}
	}
	return b, nil
}

func (b Browsers) String() string {
	var parts []string
	for _, name := range []string{"android", "chrome", "edge", "firefox", "ie", "ios_saf", "opera", "safari", "samsung"} {
		if v := b.Get(name); v != 0 {
			parts = append(parts, name+" "+FormatVersion(v))
		}
	}
	return strings.Join(parts, ", ")
}
