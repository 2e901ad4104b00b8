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

// Package chartype maps single user-perceived characters to short
// type codes used as part of the feature vocabulary. Codes are part
// of the model's ABI: reordering rules, adding a class or changing a
// code requires retraining every saved model.
package chartype

import (
	"regexp"
	"strings"
)

// Language is a closed enumeration of the languages this segmenter
// supports.
type Language int

const (
	Japanese Language = iota
	Chinese
	Korean
)

// ParseLanguage parses a case-insensitive language alias as used by
// the CLI surface (japanese/ja, chinese/zh, korean/ko).
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(s) {
	case "japanese", "ja":
		return Japanese, true
	case "chinese", "zh":
		return Chinese, true
	case "korean", "ko":
		return Korean, true
	default:
		return Language(-1), false
	}
}

func (l Language) String() string {
	switch l {
	case Japanese:
		return "japanese"
	case Chinese:
		return "chinese"
	case Korean:
		return "korean"
	default:
		return "unknown"
	}
}

// UsesMixedFeatures reports whether the four WC1..WC4 mixed
// word/type features are part of this language's feature schema
// (Japanese and Chinese only; Korean's coarser type codes make them
// noisy, see spec §3).
func (l Language) UsesMixedFeatures() bool {
	return l == Japanese || l == Chinese
}

type rule struct {
	pattern *regexp.Regexp
	code    string
}

// Classifier maps one character to a type code for a given language.
// Patterns are compiled once (at construction, not per lookup) since
// GetType runs in the hot path of both training and inference.
type Classifier struct {
	lang  Language
	rules []rule
}

// defaultCode is returned for any character matched by no rule.
const defaultCode = "O"

// NewClassifier builds a Classifier for the given language. The rule
// order matters: the first matching pattern wins.
func NewClassifier(lang Language) *Classifier {
	return &Classifier{lang: lang, rules: rulesFor(lang)}
}

// Language returns the language this classifier was built for.
func (c *Classifier) Language() Language {
	return c.lang
}

// GetType returns the type code for s, which must be exactly one
// user-perceived character. Unknown characters map to "O"; there is
// no failure mode.
func (c *Classifier) GetType(s string) string {
	for _, r := range c.rules {
		if r.pattern.MatchString(s) {
			return r.code
		}
	}
	return defaultCode
}

func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// rulesFor returns the ordered (pattern, code) table for a language,
// exactly as given in spec §3. These must never be reordered or
// extended without retraining every shipped model.
func rulesFor(lang Language) []rule {
	switch lang {
	case Japanese:
		return []rule{
			{compile(`[一二三四五六七八九十百千万億兆]`), "M"},
			{compile(`[一-龠々〆ヵヶ]`), "H"},
			{compile(`[ぁ-ん]`), "I"},
			{compile(`[ァ-ヴーｱ-ﾝﾞﾟ]`), "K"},
			{compile(`[a-zA-Zａ-ｚＡ-Ｚ]`), "A"},
			{compile(`[0-9０-９]`), "N"},
		}
	case Chinese:
		return []rule{
			{compile(`[\x{4E00}-\x{9FFF}]`), "C"},
			{compile(`[\x{3400}-\x{4DBF}]`), "X"},
			{compile(`[\x{2E80}-\x{2FDF}]`), "R"},
			{compile(`[\x{3000}-\x{303F}\x{FF01}-\x{FF0F}\x{FF1A}-\x{FF20}\x{FF3B}-\x{FF40}\x{FF5B}-\x{FF65}]`), "P"},
			{compile(`[\x{3100}-\x{312F}\x{31A0}-\x{31BF}]`), "B"},
			{compile(`[a-zA-Zａ-ｚＡ-Ｚ]`), "A"},
			{compile(`[0-9０-９]`), "N"},
		}
	case Korean:
		return []rule{
			{compile(`[\x{AC00}-\x{D7AF}]`), "S"},
			{compile(`[\x{1100}-\x{11FF}]`), "J"},
			{compile(`[\x{3130}-\x{318F}]`), "G"},
			{compile(`[\x{4E00}-\x{9FFF}]`), "H"},
			{compile(`[\x{3000}-\x{303F}\x{FF01}-\x{FF0F}\x{FF1A}-\x{FF20}]`), "P"},
			{compile(`[a-zA-Zａ-ｚＡ-Ｚ]`), "A"},
			{compile(`[0-9０-９]`), "N"},
		}
	default:
		return nil
	}
}
