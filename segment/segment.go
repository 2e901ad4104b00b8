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

// Package segment applies a trained ensemble to raw, unsegmented
// text, rebuilding the same sliding window the corpus walker builds
// at training time and asking the ensemble for a boundary decision at
// every character position.
package segment

import (
	"github.com/czcorpus/cjkseg/boost"
	"github.com/czcorpus/cjkseg/chartype"
	"github.com/czcorpus/cjkseg/feats"
)

// Segmenter splits raw sentences into words. It holds no mutable
// state after construction, so a single instance can be shared freely
// across goroutines.
type Segmenter struct {
	classifier *chartype.Classifier
	learner    *boost.Learner
}

// New builds a Segmenter from a character classifier and a trained
// (or loaded) ensemble.
func New(classifier *chartype.Classifier, learner *boost.Learner) *Segmenter {
	return &Segmenter{classifier: classifier, learner: learner}
}

// Segment splits sentence into words, deciding one boundary per
// character using the same feature window the training corpus walker
// uses. An empty sentence yields an empty, non-nil slice.
func (s *Segmenter) Segment(sentence string) []string {
	runes := []rune(sentence)
	if len(runes) == 0 {
		return []string{}
	}

	chars := make([]string, 0, len(runes)+6)
	types := make([]string, 0, len(runes)+6)
	chars = append(chars, "B3", "B2", "B1")
	types = append(types, "O", "O", "O")
	for _, r := range runes {
		c := string(r)
		chars = append(chars, c)
		types = append(types, s.classifier.GetType(c))
	}
	chars = append(chars, "E1", "E2", "E3")
	types = append(types, "O", "O", "O")

	tags := make([]string, len(chars))
	for i := range tags {
		tags[i] = "U"
	}

	lang := s.classifier.Language()
	words := make([]string, 0, len(runes))
	current := []rune{runes[0]} // chars[3]/runes[0] is the seed character, never decided
	for i := 4; i < len(chars)-3; i++ {
		attrs := feats.Attributes(i, tags, chars, types, lang)
		label := s.learner.Predict(attrs)
		tags[i] = "O"
		if label == 1 {
			tags[i] = "B"
			words = append(words, string(current))
			current = current[:0]
		}
		current = append(current, runes[i-3])
	}
	words = append(words, string(current))
	return words
}
