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

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase re-capitalizes a space-separated string for display. Digit tokens
// and short all-uppercase tokens pass through unchanged, small connector
// words stay lowercase except in first position, and every other token gets
// its first letter capitalized.
func (n *Normalizer) TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if IsNumeric(w) {
			continue
		}
		if isShortAcronym(w) {
			continue
		}
		lower := strings.ToLower(w)
		if i != 0 {
			if _, ok := n.small[lower]; ok {
				words[i] = lower
				continue
			}
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

// isShortAcronym reports whether a token of at most three runes is entirely
// uppercase and contains at least one ASCII capital letter, e.g. "NW" or "US".
func isShortAcronym(w string) bool {
	if utf8.RuneCountInString(w) > 3 || w != strings.ToUpper(w) {
		return false
	}
	for _, r := range w {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
