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

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/TFMV/GateCodeCleaner/internal/classify"
	"github.com/TFMV/GateCodeCleaner/internal/dataset"
	"github.com/TFMV/GateCodeCleaner/internal/merger"
	"github.com/TFMV/GateCodeCleaner/internal/normalize"
	"github.com/TFMV/GateCodeCleaner/pkg/config"
)

var (
	rulesPath string
	logPath   string
	verbose   bool
	logCfg    = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&rulesPath, "rules", "r", "", "path to YAML file with extra normalization rules")
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stderr")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

// ruleOptions translates an optional rules file into normalizer and
// classifier options. A missing --rules flag means built-ins only.
func ruleOptions() ([]normalize.Option, []classify.Option) {
	if rulesPath == "" {
		return nil, nil
	}
	rules, err := config.LoadRules(rulesPath)
	if err != nil {
		log.Fatalf("failed to load rules file %q: %v", rulesPath, err)
	}

	var normOpts []normalize.Option
	if len(rules.Abbreviations) > 0 {
		normOpts = append(normOpts, normalize.WithAbbreviations(rules.Abbreviations))
	}
	if len(rules.SmallWords) > 0 {
		normOpts = append(normOpts, normalize.WithSmallWords(rules.SmallWords...))
	}

	var classOpts []classify.Option
	for category, keywords := range rules.TypeKeywords {
		classOpts = append(classOpts, classify.WithKeywords(category, keywords...))
	}
	return normOpts, classOpts
}

func main() {
	cmdLineParse()

	args := pflag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input-path> <output-path>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	inPath, outPath := args[0], args[1]

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	normOpts, classOpts := ruleOptions()
	norm := normalize.New(normOpts...)
	engine := merger.New(norm, classify.New(norm, classOpts...))

	doc, err := dataset.ReadFile(inPath)
	if err != nil {
		log.Fatalf("failed to read dataset %q: %v", inPath, err)
	}

	groups, stats := engine.CleanGroups(doc.Groups)
	slog.Debug("merge complete",
		"communities", stats.Communities,
		"spellings_merged", stats.SpellingsMerged,
		"entries_in", stats.EntriesIn,
		"entries_out", stats.EntriesOut,
	)

	cleaned := &dataset.CleanedDocument{Meta: doc.Meta, Groups: groups}
	if err := dataset.WriteFile(outPath, cleaned); err != nil {
		log.Fatalf("failed to write cleaned dataset %q: %v", outPath, err)
	}

	fmt.Printf("Wrote %s (communities=%d)\n", outPath, stats.Communities)
}
