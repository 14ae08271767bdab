// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

// Package dataset holds the in-memory document model for the gate-code
// dataset and its tolerant JSON codec. Malformed pieces of the input are
// dropped at decode time, never rejected: non-object entries, non-array
// community values, and non-string fields all degrade quietly.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// RawEntry is a single record as it appears in the input document, with
// missing or non-string fields already resolved to empty strings.
type RawEntry struct {
	Address string
	Gate    string
	Type    string
}

// RawGroup is one community name with its entries, in document order. The
// same physical community can appear under several RawGroups when the input
// spells its name differently.
type RawGroup struct {
	Name    string
	Entries []RawEntry
}

// RawDocument is the decoded input file. Groups preserves the key order of
// the input JSON object so downstream merging stays deterministic.
type RawDocument struct {
	Meta   json.RawMessage
	Groups []RawGroup
}

// CleanedEntry is one merged output record.
type CleanedEntry struct {
	Address string `json:"address"`
	Gate    string `json:"gate"`
	Type    string `json:"type"`
}

// CleanedDocument is the output file shape. Meta is carried over from the
// input verbatim.
type CleanedDocument struct {
	Meta   json.RawMessage           `json:"meta"`
	Groups map[string][]CleanedEntry `json:"groups"`
}

// Decode reads a raw dataset document from r. Only an unparseable top-level
// document is an error; everything below that degrades to empty values.
func Decode(r io.Reader) (*RawDocument, error) {
	var top struct {
		Meta   json.RawMessage `json:"meta"`
		Groups json.RawMessage `json:"groups"`
	}
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return nil, fmt.Errorf("unable to parse input JSON: %w", err)
	}
	return &RawDocument{
		Meta:   top.Meta,
		Groups: decodeGroups(top.Groups),
	}, nil
}

// decodeGroups walks the groups object token by token so that the original
// key order survives decoding. A missing or non-object groups value yields
// no groups.
func decodeGroups(raw json.RawMessage) []RawGroup {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var groups []RawGroup
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return groups
		}
		name, ok := keyTok.(string)
		if !ok {
			return groups
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return groups
		}
		entries, ok := decodeEntries(value)
		if !ok {
			// Non-array community value contributes nothing.
			continue
		}
		groups = append(groups, RawGroup{Name: name, Entries: entries})
	}
	return groups
}

// decodeEntries resolves a community's entry array. Non-object elements are
// skipped; an empty array is kept so the community still appears in the
// output. The second return is false when the value is not an array at all.
func decodeEntries(raw json.RawMessage) ([]RawEntry, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		// null and other non-array values are not entry lists.
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, false
	}
	entries := make([]RawEntry, 0, len(elems))
	for _, elem := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			continue
		}
		entries = append(entries, RawEntry{
			Address: stringField(fields, "address"),
			Gate:    stringField(fields, "gate"),
			Type:    stringField(fields, "type"),
		})
	}
	return entries, true
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Encode writes a cleaned document to w with two-space indentation. Non-ASCII
// characters are written as UTF-8, not escape sequences.
func Encode(w io.Writer, doc *CleanedDocument) error {
	out := *doc
	if out.Meta == nil {
		out.Meta = json.RawMessage("{}")
	}
	if out.Groups == nil {
		out.Groups = map[string][]CleanedEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("unable to encode cleaned JSON: %w", err)
	}
	return nil
}

// ReadFile decodes the raw dataset at path.
func ReadFile(path string) (*RawDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read input file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes the cleaned document to path.
func WriteFile(path string, doc *CleanedDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}
