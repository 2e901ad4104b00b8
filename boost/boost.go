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

// Package boost implements a discrete AdaBoost ensemble over
// single-feature weak hypotheses: "predict +1 if feature h is present
// in the instance, else -1". Each round picks the feature whose
// hypothesis has the weighted error rate furthest from 0.5 under the
// current instance weights, falling back to feature index 0 (the
// reserved "" bias bucket, which is never actually present in any
// instance) as the "always predict -1" baseline when no real feature
// beats it.
//
// Training instances are stored as a flat buffer of feature indices
// (instancesBuf) sliced per instance by (start, end) pairs, each
// slice kept sorted so membership tests during training are a binary
// search rather than a map lookup.
package boost

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/czcorpus/cjkseg/cjkerr"
	"github.com/czcorpus/cjkseg/feats"
	"github.com/czcorpus/cjkseg/model"
)

const epsilon = 1e-10

// Metrics summarizes ensemble performance against the instances it
// was trained or loaded with. Percentages are in [0, 100].
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64

	NumInstances   int
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	TrueNegatives  int
}

type span struct {
	start, end int
}

// Learner is a trainable or loaded boosting ensemble. The zero value
// is not usable; construct one with NewLearner or LoadLearner.
type Learner struct {
	threshold     float64
	numIterations int

	featureIndex map[string]int
	features     []string
	model        []float64

	instancesBuf    []int
	instances       []span
	labels          []int
	instanceWeights []float64
}

// NewLearner creates an empty ensemble ready to accept training
// instances via AddInstance or LoadFeatureFile. Training runs for
// numIterations rounds, stopping earlier once the best available weak
// hypothesis is no more discriminative than threshold (its error rate
// within threshold of 0.5, i.e. coin-flip).
func NewLearner(threshold float64, numIterations int) *Learner {
	return &Learner{
		threshold:     threshold,
		numIterations: numIterations,
		featureIndex:  map[string]int{"": 0},
		features:      []string{""},
		model:         []float64{0},
	}
}

// LoadLearner reconstructs an ensemble from a saved model file, ready
// for Score/Predict. It carries no training instances.
func LoadLearner(r io.Reader) (*Learner, error) {
	features, weights, err := model.Load(r)
	if err != nil {
		return nil, err
	}
	l := &Learner{
		featureIndex: make(map[string]int, len(features)),
		features:     features,
		model:        weights,
	}
	for i, f := range features {
		l.featureIndex[f] = i
	}
	return l, nil
}

// indexFor returns the vocabulary index of f, growing the vocabulary
// if f has not been seen before.
func (l *Learner) indexFor(f string) int {
	if idx, ok := l.featureIndex[f]; ok {
		return idx
	}
	idx := len(l.features)
	l.featureIndex[f] = idx
	l.features = append(l.features, f)
	l.model = append(l.model, 0)
	return idx
}

// AddInstance registers one training instance. Its signature matches
// corpus.Sink, so a Learner can be passed directly as the sink of
// corpus.Walk/WalkFile.
func (l *Learner) AddInstance(attrs feats.Set, label int) error {
	start := len(l.instancesBuf)
	idxs := make([]int, 0, len(attrs))
	for f := range attrs {
		idxs = append(idxs, l.indexFor(f))
	}
	sort.Ints(idxs)
	l.instancesBuf = append(l.instancesBuf, idxs...)
	l.instances = append(l.instances, span{start, len(l.instancesBuf)})
	l.labels = append(l.labels, label)
	l.instanceWeights = append(l.instanceWeights, 1.0)
	return nil
}

// LoadFeatureFile ingests a feature file in two logical passes: the
// first collects the lexicographically ordered feature vocabulary
// (the "" bias bucket is always inserted), the second maps each
// line's tokens through that vocabulary into sparse instances. Tokens
// absent from the vocabulary cannot occur (they were never seen in
// the first pass) and are silently skipped defensively. Calling this
// replaces any instances added via AddInstance.
func (l *Learner) LoadFeatureFile(r io.Reader) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}

	vocab := make(map[string]struct{})
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		for _, h := range fields[1:] {
			vocab[h] = struct{}{}
		}
	}
	vocab[""] = struct{}{}
	if len(vocab) == 1 {
		return fmt.Errorf("%w: no features found in training data (only the bias term is present)", cjkerr.ErrInvalidData)
	}

	features := make([]string, 0, len(vocab))
	for f := range vocab {
		features = append(features, f)
	}
	sort.Strings(features)
	featureIndex := make(map[string]int, len(features))
	for i, f := range features {
		featureIndex[f] = i
	}

	l.features = features
	l.featureIndex = featureIndex
	l.model = make([]float64, len(features))
	l.instancesBuf = l.instancesBuf[:0]
	l.instances = l.instances[:0]
	l.labels = l.labels[:0]
	l.instanceWeights = l.instanceWeights[:0]

	bias := l.Bias() // zero: the model is freshly reset above
	for lineNum, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		label, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w: line %d: invalid label %q", cjkerr.ErrInvalidData, lineNum+1, fields[0])
		}

		start := len(l.instancesBuf)
		score := bias
		for _, h := range fields[1:] {
			if idx, ok := featureIndex[h]; ok {
				l.instancesBuf = append(l.instancesBuf, idx)
				score += l.model[idx]
			}
		}
		end := len(l.instancesBuf)
		sort.Ints(l.instancesBuf[start:end])

		l.instances = append(l.instances, span{start, end})
		l.labels = append(l.labels, label)
		l.instanceWeights = append(l.instanceWeights, math.Exp(-2*float64(label)*score))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func containsSorted(xs []int, x int) bool {
	i := sort.SearchInts(xs, x)
	return i < len(xs) && xs[i] == x
}

// Train runs the boosting rounds. It returns metrics measured against
// the final ensemble state, whatever stopped training: reaching
// numIterations, crossing the threshold, or ctx being cancelled.
// Cancellation is reported via cjkerr.ErrCancelled and is not a
// failure: a partially trained ensemble is still usable.
func (l *Learner) Train(ctx context.Context) (Metrics, error) {
	if len(l.labels) == 0 {
		return Metrics{}, fmt.Errorf("%w: no training instances", cjkerr.ErrInvalidData)
	}
	numFeatures := len(l.features)

	var cancelled bool
	for round := 0; round < l.numIterations; round++ {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}

		errors := make([]float64, numFeatures)
		var instanceWeightSum, positiveWeightSum float64
		for i, lab := range l.labels {
			d := l.instanceWeights[i]
			instanceWeightSum += d
			if lab > 0 {
				positiveWeightSum += d
			}
			delta := d * float64(lab)
			sp := l.instances[i]
			for _, h := range l.instancesBuf[sp.start:sp.end] {
				errors[h] -= delta
			}
		}

		// h=0 is the baseline "predict everyone negative" rule: its
		// error rate is exactly the weighted fraction of positives.
		hBest := 0
		bestErrorRate := positiveWeightSum / instanceWeightSum
		for h := 1; h < numFeatures; h++ {
			e := (errors[h] + positiveWeightSum) / instanceWeightSum
			if math.Abs(0.5-e) > math.Abs(0.5-bestErrorRate) {
				hBest = h
				bestErrorRate = e
			}
		}

		if math.Abs(0.5-bestErrorRate) < l.threshold {
			break
		}

		alpha := 0.5 * math.Log(math.Max(1-bestErrorRate, epsilon)/math.Max(bestErrorRate, epsilon))
		alphaExp := math.Exp(alpha)
		l.model[hBest] += alpha

		for i, lab := range l.labels {
			sp := l.instances[i]
			pred := -1
			if containsSorted(l.instancesBuf[sp.start:sp.end], hBest) {
				pred = 1
			}
			if lab*pred < 0 {
				l.instanceWeights[i] *= alphaExp
			} else {
				l.instanceWeights[i] /= alphaExp
			}
		}

		var sum float64
		for _, w := range l.instanceWeights {
			sum += w
		}
		if sum > 0 {
			for i := range l.instanceWeights {
				l.instanceWeights[i] /= sum
			}
		}
	}

	metrics := l.Metrics()
	if cancelled {
		return metrics, cjkerr.ErrCancelled
	}
	return metrics, nil
}

// Metrics reports accuracy/precision/recall of the current ensemble
// against its training instances.
func (l *Learner) Metrics() Metrics {
	bias := l.Bias()
	var tp, fp, fn, tn int
	for i, lab := range l.labels {
		sp := l.instances[i]
		score := bias
		for _, h := range l.instancesBuf[sp.start:sp.end] {
			score += l.model[h]
		}
		switch {
		case score >= 0 && lab > 0:
			tp++
		case score >= 0:
			fp++
		case lab > 0:
			fn++
		default:
			tn++
		}
	}
	n := len(l.labels)
	return Metrics{
		Accuracy:       float64(tp+tn) / float64(maxInt(n, 1)) * 100,
		Precision:      float64(tp) / float64(maxInt(tp+fp, 1)) * 100,
		Recall:         float64(tp) / float64(maxInt(tp+fn, 1)) * 100,
		NumInstances:   n,
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
		TrueNegatives:  tn,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Score returns the ensemble's raw signed confidence for attrs: the
// bias term plus the weight of every feature in attrs that is part of
// the vocabulary. Features unknown to the ensemble contribute
// nothing, rather than being treated as evidence against the label.
func (l *Learner) Score(attrs feats.Set) float64 {
	score := l.Bias()
	for f := range attrs {
		if idx, ok := l.featureIndex[f]; ok {
			score += l.model[idx]
		}
	}
	return score
}

// Predict returns 1 or -1, the sign of Score.
func (l *Learner) Predict(attrs feats.Set) int {
	if l.Score(attrs) >= 0 {
		return 1
	}
	return -1
}

// Bias returns -Σmodel/2, the ensemble's constant term.
func (l *Learner) Bias() float64 {
	var sum float64
	for _, w := range l.model {
		sum += w
	}
	return -sum / 2
}

// Save writes the ensemble in model file format.
func (l *Learner) Save(w io.Writer) error {
	return model.Save(w, l.features, l.model)
}
