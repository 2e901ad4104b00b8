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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cjkseg/chartype"
	"github.com/czcorpus/cjkseg/corpus"
	"github.com/czcorpus/cjkseg/feats"
)

func runExtract(args []string) error {
	fset := flag.NewFlagSet("extract", flag.ContinueOnError)
	language := fset.String("language", "japanese", "japanese, chinese or korean")
	fset.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cjkseg extract [options] corpus_file features_file")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() < 2 {
		fset.Usage()
		return fmt.Errorf("invalid-input: extract requires corpus_file and features_file")
	}

	lang, err := parseLanguage(*language)
	if err != nil {
		return err
	}
	classifier := chartype.NewClassifier(lang)

	in, err := os.Open(fset.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(fset.Arg(1))
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	var count int
	err = corpus.WalkFile(in, classifier, func(attrs feats.Set, label int) error {
		fmt.Fprintf(w, "%d", label)
		for _, f := range attrs.Sorted() {
			fmt.Fprintf(w, " %s", f)
		}
		fmt.Fprintln(w)
		count++
		return nil
	})
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Info().Int("instances", count).Str("language", lang.String()).Msg("extraction complete")
	return nil
}
