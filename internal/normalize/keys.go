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

package normalize

import "strings"

var (
	// Define common abbreviations expanded during address key derivation
	abbreviations = map[string]string{
		"n":    "north",
		"s":    "south",
		"e":    "east",
		"w":    "west",
		"ne":   "northeast",
		"nw":   "northwest",
		"se":   "southeast",
		"sw":   "southwest",
		"rd":   "road",
		"st":   "street",
		"ave":  "avenue",
		"av":   "avenue",
		"blvd": "boulevard",
		"dr":   "drive",
		"ln":   "lane",
		"pl":   "place",
		"ct":   "court",
		"cir":  "circle",
		"trl":  "trail",
		"pkwy": "parkway",
		"hwy":  "highway",
		"mt":   "mount",
		"ste":  "suite",
		"apt":  "apartment",
		"apts": "apartments",
		"unit": "unit",
		"bldg": "building",
	}

	// Small connector words kept lowercase mid-title
	smallWords = map[string]struct{}{
		"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {},
		"for": {}, "from": {}, "in": {}, "into": {}, "near": {}, "nor": {},
		"of": {}, "on": {}, "or": {}, "over": {}, "the": {}, "to": {},
		"up": {}, "via": {}, "with": {},
	}
)

// Normalizer derives grouping keys and display forms for community names and
// street addresses. The lookup tables are fixed at construction time.
type Normalizer struct {
	abbrev map[string]string
	small  map[string]struct{}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithAbbreviations adds extra token expansions for address key derivation.
// Built-in expansions are never overridden.
func WithAbbreviations(m map[string]string) Option {
	return func(n *Normalizer) {
		for token, expansion := range m {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			if _, ok := n.abbrev[token]; !ok {
				n.abbrev[token] = strings.ToLower(strings.TrimSpace(expansion))
			}
		}
	}
}

// WithSmallWords adds extra lowercase connector words for title casing.
func WithSmallWords(words ...string) Option {
	return func(n *Normalizer) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				n.small[w] = struct{}{}
			}
		}
	}
}

// New creates a Normalizer backed by the built-in abbreviation and
// small-word tables, extended by the given options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		abbrev: make(map[string]string, len(abbreviations)),
		small:  make(map[string]struct{}, len(smallWords)),
	}
	for k, v := range abbreviations {
		n.abbrev[k] = v
	}
	for w := range smallWords {
		n.small[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// CommunityKey derives the canonical grouping key for a community display
// name. The key is lowercase, accent-stripped, and punctuation-folded; it is
// never shown to users directly.
func (n *Normalizer) CommunityKey(name string) string {
	return FoldNonAlnum(strings.ToLower(StripAccents(CollapseSpaces(name))))
}

// AddressKey derives the merge key for a street address. It applies the same
// folding as CommunityKey and then expands common abbreviations token by
// token, so "123 N Main St" and "123 North Main Street" produce the same key.
func (n *Normalizer) AddressKey(addr string) string {
	cleaned := n.CommunityKey(addr)
	if cleaned == "" {
		return ""
	}
	words := strings.Fields(cleaned)
	for i, w := range words {
		if expansion, ok := n.abbrev[w]; ok {
			words[i] = expansion
		}
	}
	return strings.Join(words, " ")
}
