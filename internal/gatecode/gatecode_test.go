package gatecode

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Noisy free text", "Gate: 0456, code 0456 / 0789", []string{"0456", "0456", "0789"}},
		{"Plain code", "1234", []string{"1234"}},
		{"Codes split by letters", "dial 99 then 1234#", []string{"99", "1234"}},
		{"No digits", "call the office", nil},
		{"Empty string", "", nil},
		{"Leading zeros kept", "0042", []string{"0042"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"Repeat dropped at first position", []string{"0456", "0456", "0789"}, []string{"0456", "0789"}},
		{"Later repeat dropped", []string{"1", "2", "1", "3", "2"}, []string{"1", "2", "3"}},
		{"No repeats", []string{"7", "8"}, []string{"7", "8"}},
		{"Empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedupe(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Dedupe(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Dedup and order preserved", "Gate: 0456, code 0456 / 0789", "0456 0789"},
		{"Single code", "#1234", "1234"},
		{"No digits", "see manager", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Codes(tt.input); got != tt.expected {
				t.Errorf("Codes(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
