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

// Command cjkseg is the thin CLI shell around the segmentation and
// boosting core: argument parsing, file I/O wiring, and cancellation
// signalling live here, never in the library packages.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cjkseg/chartype"
)

var (
	version   string
	build     string
	gitCommit string
)

func banner() {
	fmt.Fprintln(os.Stderr, "\n+-------------------------------------------------------------+")
	fmt.Fprintln(os.Stderr, "| cjkseg - a compact CJK word segmenter (TinySegmenter lineage)|")
	fmt.Fprintf(os.Stderr, "|                       version %s                         |\n", version)
	fmt.Fprintln(os.Stderr, "+-------------------------------------------------------------+")
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  cjkseg extract --language L corpus_file features_file")
	fmt.Fprintln(os.Stderr, "  cjkseg train [--threshold T] [--num-iterations N] [--load-model-uri U] features_file model_file")
	fmt.Fprintln(os.Stderr, "  cjkseg segment --language L model_uri")
	fmt.Fprintln(os.Stderr, "  cjkseg split-sentences")
	fmt.Fprintln(os.Stderr, "  cjkseg run config.json")
	fmt.Fprintln(os.Stderr, "\nLanguages: japanese/ja, chinese/zh, korean/ko")
}

func main() {
	if len(os.Args) < 2 {
		banner()
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// signal.NotifyContext cancels ctx on the first SIGINT/SIGTERM but
	// keeps intercepting signals until stop is called, so stop is called
	// as soon as ctx is done: a second signal then falls through to the
	// default OS behaviour (process termination) rather than being
	// caught again.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(os.Args[2:])
	case "train":
		err = runTrain(ctx, os.Args[2:])
	case "segment":
		err = runSegment(os.Args[2:])
	case "split-sentences":
		err = runSplitSentences(os.Args[2:])
	case "run":
		err = runFromConfig(ctx, os.Args[2:])
	default:
		banner()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseLanguage(s string) (chartype.Language, error) {
	lang, ok := chartype.ParseLanguage(strings.ToLower(s))
	if !ok {
		return 0, fmt.Errorf("invalid-input: unknown language %q", s)
	}
	return lang, nil
}
