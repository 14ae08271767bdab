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

// Package merger collapses duplicate gate-code records. Records are grouped
// by normalized community key and then by normalized address key; each
// address group collapses to one entry carrying the majority-vote display
// address, the majority-vote facility type, and the union of its gate codes.
package merger

import (
	"strings"

	"github.com/TFMV/GateCodeCleaner/internal/classify"
	"github.com/TFMV/GateCodeCleaner/internal/dataset"
	"github.com/TFMV/GateCodeCleaner/internal/gatecode"
	"github.com/TFMV/GateCodeCleaner/internal/normalize"
)

// Engine runs the merge over a decoded raw document. It holds no state
// between runs; the same input always produces the same output.
type Engine struct {
	norm  *normalize.Normalizer
	types *classify.Classifier
}

// Stats summarizes one merge run.
type Stats struct {
	Communities     int
	SpellingsMerged int
	EntriesIn       int
	EntriesOut      int
}

// New creates an Engine from the given normalizer and classifier.
func New(norm *normalize.Normalizer, types *classify.Classifier) *Engine {
	return &Engine{norm: norm, types: types}
}

// addrGroup accumulates the contributors to one normalized address key.
type addrGroup struct {
	addresses *voteCounter
	types     *voteCounter
	tokens    []string
}

// CleanGroups merges the raw groups into the cleaned output mapping.
// Community names that normalize to the same key contribute to one bucket,
// later spellings appending after earlier ones, and each bucket's entries
// collapse per distinct address key in first-encountered order.
func (e *Engine) CleanGroups(groups []dataset.RawGroup) (map[string][]dataset.CleanedEntry, Stats) {
	var stats Stats

	buckets := make(map[string][]dataset.RawEntry)
	var keyOrder []string
	for _, g := range groups {
		key := e.norm.CommunityKey(g.Name)
		if _, ok := buckets[key]; ok {
			stats.SpellingsMerged++
		} else {
			keyOrder = append(keyOrder, key)
		}
		buckets[key] = append(buckets[key], g.Entries...)
		stats.EntriesIn += len(g.Entries)
	}

	out := make(map[string][]dataset.CleanedEntry, len(keyOrder))
	for _, key := range keyOrder {
		entries := e.mergeBucket(buckets[key])
		out[e.norm.TitleCase(key)] = entries
		stats.EntriesOut += len(entries)
	}
	stats.Communities = len(out)
	return out, stats
}

// mergeBucket collapses one community's entries by normalized address key.
func (e *Engine) mergeBucket(entries []dataset.RawEntry) []dataset.CleanedEntry {
	byAddr := make(map[string]*addrGroup)
	var addrOrder []string
	for _, entry := range entries {
		address := normalize.CollapseSpaces(entry.Address)
		gate := normalize.CollapseSpaces(entry.Gate)

		key := e.norm.AddressKey(address)
		group, ok := byAddr[key]
		if !ok {
			group = &addrGroup{addresses: newVoteCounter(), types: newVoteCounter()}
			byAddr[key] = group
			addrOrder = append(addrOrder, key)
		}
		group.addresses.Add(address)
		group.types.Add(e.types.Classify(entry.Type))
		group.tokens = append(group.tokens, gatecode.Extract(gate)...)
	}

	cleaned := make([]dataset.CleanedEntry, 0, len(addrOrder))
	for _, key := range addrOrder {
		group := byAddr[key]
		address := group.addresses.Winner()
		if address == "" {
			address = e.norm.TitleCase(key)
		}
		facility := group.types.Winner()
		if facility == "" {
			facility = classify.Unknown
		}
		cleaned = append(cleaned, dataset.CleanedEntry{
			Address: address,
			Gate:    strings.Join(gatecode.Dedupe(group.tokens), " "),
			Type:    facility,
		})
	}
	return cleaned
}
