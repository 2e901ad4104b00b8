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

// Package feats extracts the string-valued indicator features used
// by the boosting learner from a sliding window of characters,
// character types and previously decided tags. It is a pure function
// of its inputs and produces byte-for-byte identical keys across
// calls, since those keys are compared against feature names loaded
// from a saved model.
package feats

import (
	"sort"

	"github.com/czcorpus/cjkseg/chartype"
)

// Set is the feature collection returned by Attributes. Order carries
// no meaning; callers that need a stable order (the corpus walker
// writing a feature file, the learner ingesting an instance) sort it
// themselves.
type Set map[string]struct{}

// Attributes builds the feature set for the boundary decision at
// position i, given the padded window sequences. It emits the 38
// base features (UP/BP/UW/BW/UC/BC/TC/UQ/BQ/TQ) plus, for Japanese
// and Chinese, the 4 additional WC mixed features (42 total).
func Attributes(i int, tags, chars, types []string, lang chartype.Language) Set {
	w1, w2, w3, w4, w5, w6 := chars[i-3], chars[i-2], chars[i-1], chars[i], chars[i+1], chars[i+2]
	c1, c2, c3, c4, c5, c6 := types[i-3], types[i-2], types[i-1], types[i], types[i+1], types[i+2]
	p1, p2, p3 := tags[i-3], tags[i-2], tags[i-1]

	size := 38
	if lang.UsesMixedFeatures() {
		size = 42
	}
	attrs := make(Set, size)

	attrs["UP1:"+p1] = struct{}{}
	attrs["UP2:"+p2] = struct{}{}
	attrs["UP3:"+p3] = struct{}{}
	attrs["BP1:"+p1+p2] = struct{}{}
	attrs["BP2:"+p2+p3] = struct{}{}

	attrs["UW1:"+w1] = struct{}{}
	attrs["UW2:"+w2] = struct{}{}
	attrs["UW3:"+w3] = struct{}{}
	attrs["UW4:"+w4] = struct{}{}
	attrs["UW5:"+w5] = struct{}{}
	attrs["UW6:"+w6] = struct{}{}
	attrs["BW1:"+w2+w3] = struct{}{}
	attrs["BW2:"+w3+w4] = struct{}{}
	attrs["BW3:"+w4+w5] = struct{}{}

	attrs["UC1:"+c1] = struct{}{}
	attrs["UC2:"+c2] = struct{}{}
	attrs["UC3:"+c3] = struct{}{}
	attrs["UC4:"+c4] = struct{}{}
	attrs["UC5:"+c5] = struct{}{}
	attrs["UC6:"+c6] = struct{}{}
	attrs["BC1:"+c2+c3] = struct{}{}
	attrs["BC2:"+c3+c4] = struct{}{}
	attrs["BC3:"+c4+c5] = struct{}{}

	attrs["TC1:"+c1+c2+c3] = struct{}{}
	attrs["TC2:"+c2+c3+c4] = struct{}{}
	attrs["TC3:"+c3+c4+c5] = struct{}{}
	attrs["TC4:"+c4+c5+c6] = struct{}{}

	attrs["UQ1:"+p1+c1] = struct{}{}
	attrs["UQ2:"+p2+c2] = struct{}{}
	attrs["UQ3:"+p3+c3] = struct{}{}

	attrs["BQ1:"+p2+c2+c3] = struct{}{}
	attrs["BQ2:"+p2+c3+c4] = struct{}{}
	attrs["BQ3:"+p3+c2+c3] = struct{}{}
	attrs["BQ4:"+p3+c3+c4] = struct{}{}

	attrs["TQ1:"+p2+c1+c2+c3] = struct{}{}
	attrs["TQ2:"+p2+c2+c3+c4] = struct{}{}
	attrs["TQ3:"+p3+c1+c2+c3] = struct{}{}
	attrs["TQ4:"+p3+c2+c3+c4] = struct{}{}

	if lang.UsesMixedFeatures() {
		attrs["WC1:"+w3+c4] = struct{}{}
		attrs["WC2:"+c3+w4] = struct{}{}
		attrs["WC3:"+w3+c3] = struct{}{}
		attrs["WC4:"+w4+c4] = struct{}{}
	}

	return attrs
}

// Sorted returns the feature strings of s in ascending lexicographic
// order, the form a feature file line or a training instance needs.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
