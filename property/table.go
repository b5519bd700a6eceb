package property

import "github.com/adamwathan/lightningcss/targets"

// always marks a browser that has never shipped the unprefixed spelling.
const always = ^uint32(0)

// prefixEntry records, for one vendor prefix of one property, the first
// version of each browser that accepts the unprefixed spelling. A targeted
// browser older than that version still needs the prefix.
type prefixEntry struct {
	prefix          VendorPrefix
	unprefixedSince map[string]uint32
}

func (e prefixEntry) neededFor(t targets.Browsers) bool {
	for name, since := range e.unprefixedSince {
		if v := t.Get(name); v != 0 && v < since {
			return true
		}
	}
	return false
}

func v(major, minor, patch int) uint32 { return targets.Version(major, minor, patch) }

// Data from https://developer.mozilla.org/en-US/docs/Web/CSS and caniuse.com.
var prefixTable = map[string][]prefixEntry{
	"transform": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(36, 0, 0), "safari": v(9, 0, 0), "ios_saf": v(9, 3, 0),
			"android": v(5, 0, 0), "opera": v(23, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(16, 0, 0)}},
		{prefix: Ms, unprefixedSince: map[string]uint32{"ie": v(10, 0, 0)}},
		{prefix: O, unprefixedSince: map[string]uint32{"opera": v(12, 1, 0)}},
	},
	"transition": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(26, 0, 0), "safari": v(6, 1, 0), "ios_saf": v(7, 0, 0),
			"android": v(4, 4, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(16, 0, 0)}},
		{prefix: O, unprefixedSince: map[string]uint32{"opera": v(12, 1, 0)}},
	},
	"animation": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(43, 0, 0), "safari": v(9, 0, 0), "ios_saf": v(9, 0, 0),
			"android": v(5, 0, 0), "opera": v(30, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(16, 0, 0)}},
		{prefix: O, unprefixedSince: map[string]uint32{"opera": v(12, 1, 0)}},
	},
	"box-sizing": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(10, 0, 0), "safari": v(5, 1, 0), "ios_saf": v(5, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(29, 0, 0)}},
	},
	"user-select": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(54, 0, 0), "safari": always, "ios_saf": always,
			"android": v(54, 0, 0), "opera": v(41, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(69, 0, 0)}},
		{prefix: Ms, unprefixedSince: map[string]uint32{"ie": always, "edge": v(79, 0, 0)}},
	},
	"appearance": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(84, 0, 0), "safari": v(15, 4, 0), "ios_saf": v(15, 4, 0),
			"android": v(84, 0, 0), "opera": v(70, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(80, 0, 0)}},
	},
	"backdrop-filter": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"safari": v(18, 0, 0), "ios_saf": v(18, 0, 0),
		}},
	},
	"filter": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(53, 0, 0), "safari": v(9, 1, 0), "ios_saf": v(9, 3, 0),
			"opera": v(40, 0, 0), "android": v(53, 0, 0),
		}},
	},
	"clip-path": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(55, 0, 0), "safari": v(13, 1, 0), "ios_saf": v(13, 0, 0),
			"opera": v(42, 0, 0), "android": v(55, 0, 0),
		}},
	},
	"mask": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(120, 0, 0), "safari": v(15, 4, 0), "ios_saf": v(15, 4, 0),
			"opera": v(106, 0, 0), "android": v(120, 0, 0),
		}},
	},
	"hyphens": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"safari": v(17, 0, 0), "ios_saf": v(17, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(43, 0, 0)}},
		{prefix: Ms, unprefixedSince: map[string]uint32{"ie": always, "edge": v(79, 0, 0)}},
	},
	"tab-size": {
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(91, 0, 0)}},
		{prefix: O, unprefixedSince: map[string]uint32{"opera": v(15, 0, 0)}},
	},
	"text-emphasis": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(99, 0, 0), "opera": v(85, 0, 0), "android": v(99, 0, 0),
		}},
	},
	"columns": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(50, 0, 0), "safari": v(9, 0, 0), "ios_saf": v(9, 0, 0),
			"android": v(50, 0, 0), "opera": v(37, 0, 0),
		}},
		{prefix: Moz, unprefixedSince: map[string]uint32{"firefox": v(52, 0, 0)}},
	},
	"flex": {
		{prefix: WebKit, unprefixedSince: map[string]uint32{
			"chrome": v(29, 0, 0), "safari": v(9, 0, 0), "ios_saf": v(9, 0, 0),
		}},
		{prefix: Ms, unprefixedSince: map[string]uint32{"ie": v(11, 0, 0)}},
	},
}
