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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Rules holds optional extensions to the built-in normalization tables.
// Every section may be omitted; built-in entries are never overridden.
type Rules struct {
	// Abbreviations adds token -> expansion pairs for address key derivation.
	Abbreviations map[string]string `yaml:"abbreviations"`
	// TypeKeywords adds exact-match keywords per canonical category, keyed by
	// "apartments", "residential", or "businesses".
	TypeKeywords map[string][]string `yaml:"type_keywords"`
	// SmallWords adds connector words kept lowercase during title casing.
	SmallWords []string `yaml:"small_words"`
}

// LoadRules loads the rules extensions from a YAML file
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read rules file: %v", err)
	}

	var rules Rules
	err = yaml.Unmarshal(data, &rules)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal rules file: %v", err)
	}

	return &rules, nil
}
