package literals

import (
	"slices"
	"strings"
)

// Whitelist lists the call names whose string arguments are never flagged.
type Whitelist struct {
	Exact  []string `mapstructure:"exact" yaml:"exact"`
	Suffix []string `mapstructure:"suffix" yaml:"suffix"`
	Prefix []string `mapstructure:"prefix" yaml:"prefix"`
}

// DefaultWhitelist returns the built-in logging, assertion and localization calls.
func DefaultWhitelist() Whitelist {
	return Whitelist{
		Exact:  []string{"print", "assert", "NSLog", "NSLocalizedString", "Selector"},
		Suffix: []string{".localizedStringForKey"},
		Prefix: []string{"XCTAssert"},
	}
}

// Clone returns a copy that shares no backing arrays with w.
func (w Whitelist) Clone() Whitelist {
	return Whitelist{
		Exact:  slices.Clone(w.Exact),
		Suffix: slices.Clone(w.Suffix),
		Prefix: slices.Clone(w.Prefix),
	}
}

// Allows reports whether a call named expr is whitelisted.
func (w Whitelist) Allows(expr string) bool {
	if slices.Contains(w.Exact, expr) {
		return true
	}

	for _, suffix := range w.Suffix {
		if strings.HasSuffix(expr, suffix) {
			return true
		}
	}

	for _, prefix := range w.Prefix {
		if strings.HasPrefix(expr, prefix) {
			return true
		}
	}

	return false
}
