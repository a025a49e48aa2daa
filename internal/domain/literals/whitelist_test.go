package literals

import "testing"

func TestWhitelist_Allows(t *testing.T) {
	wl := DefaultWhitelist()

	tests := []struct {
		expr     string
		expected bool
	}{
		{"print", true},
		{"assert", true},
		{"NSLog", true},
		{"NSLocalizedString", true},
		{"Selector", true},
		{"Bundle.main.localizedStringForKey", true},
		{"localizedStringForKey", false},
		{"XCTAssert", true},
		{"XCTAssertEqual", true},
		{"debugPrint", false},
		{"printf", false},
		{"Swift.print", false},
		{"someFun", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := wl.Allows(tt.expr); got != tt.expected {
				t.Errorf("Allows(%q) = %v, expected %v", tt.expr, got, tt.expected)
			}
		})
	}
}

func TestClassifier_OwnsWhitelistCopy(t *testing.T) {
	wl := Whitelist{Exact: []string{"track"}}
	classifier := NewClassifier(wl)

	wl.Exact[0] = "other"

	if !classifier.Whitelist().Allows("track") {
		t.Errorf("classifier whitelist changed through the caller's slice")
	}

	copied := classifier.Whitelist()
	copied.Exact[0] = "mutated"

	if !classifier.Whitelist().Allows("track") {
		t.Errorf("classifier whitelist changed through a returned copy")
	}
}
