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

// Package classify maps free-text facility type labels into a small set of
// canonical categories.
package classify

import (
	"regexp"
	"strings"

	"github.com/TFMV/GateCodeCleaner/internal/normalize"
)

// Canonical facility categories.
const (
	Apartments  = "Apartments"
	Residential = "Residential"
	Businesses  = "Businesses"
	Unknown     = "Unknown"
)

var lettersRegex = regexp.MustCompile(`[^a-z]+`)

// Classifier buckets facility type strings into canonical categories via
// keyword rules, falling back to a title-cased echo of unrecognized labels.
type Classifier struct {
	norm        *normalize.Normalizer
	apartments  map[string]struct{}
	residential map[string]struct{}
	businesses  map[string]struct{}
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithKeywords adds extra exact-match keywords for a canonical category.
// Categories other than Apartments, Residential, and Businesses are ignored.
func WithKeywords(category string, keywords ...string) Option {
	return func(c *Classifier) {
		var set map[string]struct{}
		switch strings.ToLower(strings.TrimSpace(category)) {
		case "apartments":
			set = c.apartments
		case "residential":
			set = c.residential
		case "businesses":
			set = c.businesses
		default:
			return
		}
		for _, kw := range keywords {
			if folded := lettersOnly(kw); folded != "" {
				set[folded] = struct{}{}
			}
		}
	}
}

// New creates a Classifier with the built-in keyword sets extended by the
// given options. The normalizer supplies title casing for fallback labels.
func New(n *normalize.Normalizer, opts ...Option) *Classifier {
	c := &Classifier{
		norm: n,
		apartments: map[string]struct{}{
			"apt": {}, "apts": {}, "apartment": {}, "apartments": {},
		},
		residential: map[string]struct{}{
			"residential": {}, "residence": {}, "home": {}, "homes": {}, "housing": {},
		},
		businesses: map[string]struct{}{
			"business": {}, "businesses": {}, "commercial": {},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps a raw facility type string to its canonical category. Empty
// input yields Unknown; unrecognized labels echo back title-cased rather
// than being discarded.
func (c *Classifier) Classify(t string) string {
	k := lettersOnly(t)
	if k == "" {
		return Unknown
	}
	if _, ok := c.apartments[k]; ok || strings.Contains(k, "apartment") {
		return Apartments
	}
	if _, ok := c.residential[k]; ok || strings.Contains(k, "residential") || strings.Contains(k, "student") {
		return Residential
	}
	if _, ok := c.businesses[k]; ok || strings.Contains(k, "business") || strings.Contains(k, "commercial") {
		return Businesses
	}
	return c.norm.TitleCase(k)
}

// lettersOnly lowercases a string and folds everything outside [a-z] to
// spaces. Digits are dropped here, unlike the key normalizers.
func lettersOnly(s string) string {
	lowered := strings.ToLower(normalize.CollapseSpaces(s))
	return normalize.CollapseSpaces(lettersRegex.ReplaceAllString(lowered, " "))
}
