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

// Package corpus walks a space-separated gold-segmented sentence
// ("これ は テスト") and turns it into a stream of (features, label)
// training pairs by feeding the sliding window to package feats.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/czcorpus/cjkseg/chartype"
	"github.com/czcorpus/cjkseg/feats"
)

// Sink receives one training instance per decided boundary position.
// Walk stops and returns the first error a Sink produces.
type Sink func(attrs feats.Set, label int) error

// Walk processes a single gold-segmented line and calls sink once per
// decision position. Empty lines and lines with no words at all emit
// nothing. Consecutive spaces are treated as a single separator.
func Walk(line string, classifier *chartype.Classifier, sink Sink) error {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	tags := []string{"U", "U", "U"}
	chars := []string{"B3", "B2", "B1"}
	types := []string{"O", "O", "O"}

	for _, word := range words {
		runes := []rune(word)
		tags = append(tags, "B")
		for range runes[1:] {
			tags = append(tags, "O")
		}
		for _, r := range runes {
			s := string(r)
			chars = append(chars, s)
			types = append(types, classifier.GetType(s))
		}
	}
	if len(tags) < 4 {
		return nil
	}
	tags[3] = "U" // index 3 is the seed character: never predicted, always starts the token

	chars = append(chars, "E1", "E2", "E3")
	types = append(types, "O", "O", "O")

	lang := classifier.Language()
	for i := 4; i < len(chars)-3; i++ {
		label := -1
		if tags[i] == "B" {
			label = 1
		}
		attrs := feats.Attributes(i, tags, chars, types, lang)
		if err := sink(attrs, label); err != nil {
			return err
		}
	}
	return nil
}

// WalkFile streams a corpus file line by line through Walk, the
// producer side of `extract`. Lines are read with bufio.Scanner the
// way the rest of this codebase streams line-oriented text files.
func WalkFile(r io.Reader, classifier *chartype.Classifier, sink Sink) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := Walk(scanner.Text(), classifier, sink); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}
