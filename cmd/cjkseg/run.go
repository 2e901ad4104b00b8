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
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cjkseg/boost"
	"github.com/czcorpus/cjkseg/chartype"
	"github.com/czcorpus/cjkseg/cjkerr"
	"github.com/czcorpus/cjkseg/cnf"
	"github.com/czcorpus/cjkseg/corpus"
	"github.com/czcorpus/cjkseg/feats"
)

// runFromConfig drives extraction followed by training from a single
// JSON configuration, the same way vte.go once drove vertical-file
// extraction from a single config path. Useful for batch/cron setups
// that don't want to wire up separate extract/train invocations.
func runFromConfig(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("run", flag.ContinueOnError)
	fset.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cjkseg run config.json")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() < 1 {
		fset.Usage()
		return fmt.Errorf("invalid-input: run requires a config.json path")
	}

	conf, err := cnf.LoadConf(fset.Arg(0))
	if err != nil {
		return err
	}

	lang, err := parseLanguage(conf.Language)
	if err != nil {
		return err
	}
	classifier := chartype.NewClassifier(lang)

	if conf.LoadModelURI != "" {
		content, err := fetchModel(ctx, conf.LoadModelURI, conf.CacheDB)
		if err != nil {
			return err
		}
		prior, err := boost.LoadLearner(bytes.NewReader(content))
		if err != nil {
			return err
		}
		log.Info().Float64("bias", prior.Bias()).Msg("loaded prior model for reference; training still starts from a fresh ensemble")
	}

	corpusFile, err := os.Open(conf.CorpusFile)
	if err != nil {
		return err
	}
	defer corpusFile.Close()

	learner := boost.NewLearner(conf.Threshold, conf.NumIterations)
	var numInstances int
	err = corpus.WalkFile(corpusFile, classifier, func(attrs feats.Set, label int) error {
		numInstances++
		return learner.AddInstance(attrs, label)
	})
	if err != nil {
		return err
	}
	log.Info().Int("instances", numInstances).Str("language", lang.String()).Msg("extraction complete")

	metrics, err := learner.Train(ctx)
	if err != nil && !errors.Is(err, cjkerr.ErrCancelled) {
		return err
	}
	if errors.Is(err, cjkerr.ErrCancelled) {
		log.Warn().Msg("training cancelled; saving partially trained model")
	}

	out, err := os.Create(conf.ModelFile)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := learner.Save(out); err != nil {
		return err
	}

	log.Info().
		Float64("accuracy", metrics.Accuracy).
		Float64("precision", metrics.Precision).
		Float64("recall", metrics.Recall).
		Int("instances", metrics.NumInstances).
		Msg("training complete")
	return nil
}
