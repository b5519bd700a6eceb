package property

import (
	"encoding/json"
	"fmt"
)

var prefixNames = map[VendorPrefix]string{
	WebKit: "webkit",
	Moz:    "moz",
	Ms:     "ms",
	O:      "o",
	None:   "none",
}

// MarshalJSON encodes the prefix set as an array of prefix names.
func (p VendorPrefix) MarshalJSON() ([]byte, error) {
	names := []string{}
	for _, bit := range p.Prefixes() {
		names = append(names, prefixNames[bit])
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes an array of prefix names back into a bit set.
func (p *VendorPrefix) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var set VendorPrefix
	for _, name := range names {
		found := false
		for bit, n := range prefixNames {
			if n == name {
				set |= bit
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown vendor prefix %q", name)
		}
	}
	*p = set
	return nil
}
