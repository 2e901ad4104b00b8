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
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cjkseg/boost"
	"github.com/czcorpus/cjkseg/chartype"
	"github.com/czcorpus/cjkseg/db"
	"github.com/czcorpus/cjkseg/model"
	"github.com/czcorpus/cjkseg/segment"
)

// fetchModel resolves a model URI, consulting the sqlite cache at
// cachePath first when one is configured. A cache miss fetches via
// model.Fetch and stores the result before returning it.
func fetchModel(ctx context.Context, uri, cachePath string) ([]byte, error) {
	if cachePath == "" {
		r, err := model.Fetch(ctx, uri)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	}

	cache, err := db.Open(cachePath)
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	if content, hit, err := cache.Get(uri); err != nil {
		return nil, err
	} else if hit {
		log.Debug().Str("uri", uri).Msg("model cache hit")
		return content, nil
	}

	r, err := model.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(uri, content); err != nil {
		return nil, err
	}
	return content, nil
}

func runSegment(args []string) error {
	ctx := context.Background()
	fset := flag.NewFlagSet("segment", flag.ContinueOnError)
	language := fset.String("language", "japanese", "japanese, chinese or korean")
	cacheDB := fset.String("cache-db", "", "optional sqlite file caching fetched model_uri downloads")
	fset.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cjkseg segment [options] model_uri")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() < 1 {
		fset.Usage()
		return fmt.Errorf("invalid-input: segment requires a model_uri")
	}

	lang, err := parseLanguage(*language)
	if err != nil {
		return err
	}

	modelURI := fset.Arg(0)
	content, err := fetchModel(ctx, modelURI, *cacheDB)
	if err != nil {
		return err
	}
	learner, err := boost.LoadLearner(bytes.NewReader(content))
	if err != nil {
		return err
	}

	segmenter := segment.New(chartype.NewClassifier(lang), learner)

	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for scanner.Scan() {
		tokens := segmenter.Segment(scanner.Text())
		fmt.Fprintln(w, strings.Join(tokens, " "))
	}
	return scanner.Err()
}

func runSplitSentences(args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	segs := sentences.FromString(string(data))
	for segs.Next() {
		s := strings.TrimSpace(segs.Value())
		if s == "" {
			continue
		}
		fmt.Fprintln(w, s)
	}
	return nil
}
