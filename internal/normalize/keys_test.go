package normalize

import "testing"

func TestCommunityKey(t *testing.T) {
	n := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple name", "Oak Hills", "oak hills"},
		{"Extra whitespace", "  oak   hills ", "oak hills"},
		{"Accents stripped", "Café Verde", "cafe verde"},
		{"Punctuation folded", "CAFE-VERDE", "cafe verde"},
		{"Mixed noise", "  Café--Verde!! ", "cafe verde"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.CommunityKey(tt.input); got != tt.expected {
				t.Errorf("CommunityKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCommunityKeyInsensitivity(t *testing.T) {
	n := New()

	// All spellings of the same community must collapse to one key.
	spellings := []string{"Café Verde", "CAFE-VERDE", "  cafe   verde "}
	want := n.CommunityKey(spellings[0])
	for _, s := range spellings[1:] {
		if got := n.CommunityKey(s); got != want {
			t.Errorf("CommunityKey(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestCommunityKeyStableUnderReapplication(t *testing.T) {
	n := New()

	inputs := []string{"Oak Hills", "Café--Verde", "123 N Main St", ""}
	for _, s := range inputs {
		once := n.CommunityKey(s)
		if twice := n.CommunityKey(once); twice != once {
			t.Errorf("CommunityKey(CommunityKey(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func TestAddressKey(t *testing.T) {
	n := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Directional and street type", "123 N Main St", "123 north main street"},
		{"Already expanded", "123 North Main Street", "123 north main street"},
		{"Multiple abbreviations", "55 SW Oak Blvd Apt 2", "55 southwest oak boulevard apartment 2"},
		{"Unknown tokens untouched", "7 Quail Run", "7 quail run"},
		{"Punctuation folded first", "123 N. Main St.", "123 north main street"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.AddressKey(tt.input); got != tt.expected {
				t.Errorf("AddressKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddressKeyEquivalence(t *testing.T) {
	n := New()

	if a, b := n.AddressKey("123 N St"), n.AddressKey("123 North Street"); a != b {
		t.Errorf("AddressKey mismatch: %q vs %q", a, b)
	}
}

func TestWithAbbreviations(t *testing.T) {
	n := New(WithAbbreviations(map[string]string{
		"cv": "cove",
		"st": "SAINT", // built-in entry, must not be overridden
	}))

	if got := n.AddressKey("9 Heron Cv"); got != "9 heron cove" {
		t.Errorf("AddressKey with extra abbreviation = %q, want %q", got, "9 heron cove")
	}
	if got := n.AddressKey("9 Heron St"); got != "9 heron street" {
		t.Errorf("built-in abbreviation overridden: AddressKey = %q, want %q", got, "9 heron street")
	}
}

func TestWithSmallWords(t *testing.T) {
	n := New(WithSmallWords("del"))

	if got := n.TitleCase("paseo del mar"); got != "Paseo del Mar" {
		t.Errorf("TitleCase with extra small word = %q, want %q", got, "Paseo del Mar")
	}
}
