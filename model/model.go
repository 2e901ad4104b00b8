// Copyright 2017 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2017 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model implements the textual, tab-separated model file
// grammar: one "feature\tweight" line per non-zero weight, followed
// by a single terminal line holding the bias term. The bias bucket
// (the empty-string feature) is never written directly; it is
// reconstructed algebraically on load from the bias line, which lets
// the whole ensemble collapse to one additive score per feature.
package model

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/czcorpus/cjkseg/cjkerr"
)

// Save writes features/weights in model file format. features[0] must
// be the bias bucket (""); weights[0] is its ensemble weight. Saving
// an empty model (no features at all) is fatal, matching spec §4.D's
// "save_model on an empty model is fatal".
func Save(w io.Writer, features []string, weights []float64) error {
	if len(features) == 0 {
		return fmt.Errorf("%w: cannot save an empty model", cjkerr.ErrInvalidData)
	}
	bw := bufio.NewWriter(w)
	bias := -weights[0]
	for i := 1; i < len(features); i++ {
		wt := weights[i]
		if wt == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", features[i], strconv.FormatFloat(wt, 'g', -1, 64)); err != nil {
			return err
		}
		bias -= wt
	}
	if _, err := fmt.Fprintf(bw, "%s\n", strconv.FormatFloat(bias/2.0, 'g', -1, 64)); err != nil {
		return err
	}
	return bw.Flush()
}

// Load parses model file content and returns the feature vocabulary
// (lexicographically sorted, "" always present at position 0) and
// its matching ensemble weights.
func Load(r io.Reader) ([]string, []float64, error) {
	m := make(map[string]float64)
	var acc float64

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) == 2 {
			wt, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: invalid weight %q", cjkerr.ErrInvalidData, lineNum, parts[1])
			}
			m[parts[0]] = wt
			acc += wt
			continue
		}
		b, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: invalid bias %q", cjkerr.ErrInvalidData, lineNum, parts[0])
		}
		m[""] = -2*b - acc
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if _, ok := m[""]; !ok {
		m[""] = 0
	}

	features := make([]string, 0, len(m))
	for f := range m {
		features = append(features, f)
	}
	sort.Strings(features)
	weights := make([]float64, len(features))
	for i, f := range features {
		weights[i] = m[f]
	}
	return features, weights, nil
}
