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
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cjkseg/boost"
	"github.com/czcorpus/cjkseg/cjkerr"
	"github.com/czcorpus/cjkseg/model"
)

func runTrain(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("train", flag.ContinueOnError)
	threshold := fset.Float64("threshold", 0, "stop once the best weak hypothesis is within this margin of a coin flip")
	numIterations := fset.Int("num-iterations", 300, "maximum number of boosting rounds")
	loadModelURI := fset.String("load-model-uri", "", "optional prior model whose bias is logged before training; training still starts from a fresh ensemble")
	fset.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cjkseg train [options] features_file model_file")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() < 2 {
		fset.Usage()
		return fmt.Errorf("invalid-input: train requires features_file and model_file")
	}

	if *loadModelURI != "" {
		r, err := model.Fetch(ctx, *loadModelURI)
		if err != nil {
			return err
		}
		prior, err := boost.LoadLearner(r)
		r.Close()
		if err != nil {
			return err
		}
		log.Info().Float64("bias", prior.Bias()).Msg("loaded prior model for reference; training still starts from a fresh ensemble")
	}

	featuresFile, err := os.Open(fset.Arg(0))
	if err != nil {
		return err
	}
	defer featuresFile.Close()

	learner := boost.NewLearner(*threshold, *numIterations)
	if err := learner.LoadFeatureFile(featuresFile); err != nil {
		return err
	}

	metrics, err := learner.Train(ctx)
	if err != nil && !errors.Is(err, cjkerr.ErrCancelled) {
		return err
	}
	if errors.Is(err, cjkerr.ErrCancelled) {
		log.Warn().Msg("training cancelled; saving partially trained model")
	}

	out, err := os.Create(fset.Arg(1))
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
