package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadRules(t *testing.T) {
	content := `
abbreviations:
  cv: cove
  xing: crossing
type_keywords:
  apartments: [flats]
  residential: [dorm, barracks]
small_words: [del, la]
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}

	wantAbbrev := map[string]string{"cv": "cove", "xing": "crossing"}
	if !reflect.DeepEqual(rules.Abbreviations, wantAbbrev) {
		t.Errorf("Abbreviations = %v, want %v", rules.Abbreviations, wantAbbrev)
	}
	if got := rules.TypeKeywords["residential"]; !reflect.DeepEqual(got, []string{"dorm", "barracks"}) {
		t.Errorf("TypeKeywords[residential] = %v", got)
	}
	if !reflect.DeepEqual(rules.SmallWords, []string{"del", "la"}) {
		t.Errorf("SmallWords = %v", rules.SmallWords)
	}
}

func TestLoadRulesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}
	if len(rules.Abbreviations) != 0 || len(rules.TypeKeywords) != 0 || len(rules.SmallWords) != 0 {
		t.Errorf("empty file produced rules: %+v", rules)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRules() on missing file: expected error, got nil")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("abbreviations: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(path); err == nil {
		t.Error("LoadRules() on invalid shape: expected error, got nil")
	}
}
