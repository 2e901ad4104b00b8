package boost

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/cjkseg/cjkerr"
	"github.com/czcorpus/cjkseg/feats"
)

func set(keys ...string) feats.Set {
	s := make(feats.Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func TestTrainRejectsNoInstances(t *testing.T) {
	l := NewLearner(0, 10)
	_, err := l.Train(context.Background())
	assert.ErrorIs(t, err, cjkerr.ErrInvalidData)
}

func TestTrainConverges(t *testing.T) {
	l := NewLearner(0, 20)
	require.NoError(t, l.AddInstance(set("UW1:a"), 1))
	require.NoError(t, l.AddInstance(set("UW1:a"), 1))
	require.NoError(t, l.AddInstance(set("UW1:b"), -1))
	require.NoError(t, l.AddInstance(set("UW1:b"), -1))

	metrics, err := l.Train(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, metrics.Accuracy)
	assert.Equal(t, 4, metrics.NumInstances)

	assert.Equal(t, 1, l.Predict(set("UW1:a")))
	assert.Equal(t, -1, l.Predict(set("UW1:b")))
}

func TestTrainCancelledImmediately(t *testing.T) {
	l := NewLearner(0, 10)
	require.NoError(t, l.AddInstance(set("UW1:a"), 1))
	require.NoError(t, l.AddInstance(set("UW1:b"), -1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Train(ctx)
	assert.ErrorIs(t, err, cjkerr.ErrCancelled)

	for _, w := range l.instanceWeights {
		assert.InDelta(t, 1.0, w, 1e-9)
	}
}

func TestUnknownAttributeIsNeutral(t *testing.T) {
	l := NewLearner(0, 5)
	require.NoError(t, l.AddInstance(set("UW1:a"), 1))
	require.NoError(t, l.AddInstance(set("UW1:b"), -1))
	_, err := l.Train(context.Background())
	require.NoError(t, err)

	base := l.Score(set())
	withUnknown := l.Score(set("UW1:never-seen"))
	assert.Equal(t, base, withUnknown)
}

func TestSaveLoadPredictIsStable(t *testing.T) {
	l := NewLearner(0, 20)
	require.NoError(t, l.AddInstance(set("UW1:a"), 1))
	require.NoError(t, l.AddInstance(set("UW1:a"), 1))
	require.NoError(t, l.AddInstance(set("UW1:b"), -1))
	require.NoError(t, l.AddInstance(set("UW1:b"), -1))
	_, err := l.Train(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, l.Save(&buf))

	loaded, err := LoadLearner(&buf)
	require.NoError(t, err)
	assert.Equal(t, l.Predict(set("UW1:a")), loaded.Predict(set("UW1:a")))
	assert.Equal(t, l.Predict(set("UW1:b")), loaded.Predict(set("UW1:b")))
}

// Scenario S3: metrics on a 2-instance canned learner.
func TestMetricsCannedLearner(t *testing.T) {
	l := &Learner{
		featureIndex: map[string]int{"": 0, "A": 1, "B": 2},
		features:     []string{"", "A", "B"},
		model:        []float64{0.0, 0.5, -1.0},
		instancesBuf: []int{1, 2},
		instances:    []span{{0, 1}, {1, 2}},
		labels:       []int{1, -1},
	}
	assert.InDelta(t, 0.25, l.Bias(), 1e-9)

	metrics := l.Metrics()
	assert.Equal(t, 100.0, metrics.Accuracy)
	assert.Equal(t, 100.0, metrics.Precision)
	assert.Equal(t, 100.0, metrics.Recall)
	assert.Equal(t, 1, metrics.TruePositives)
	assert.Equal(t, 1, metrics.TrueNegatives)
}

// Scenario S5: empty feature vocabulary.
func TestLoadFeatureFileEmptyVocabulary(t *testing.T) {
	l := NewLearner(0, 10)
	err := l.LoadFeatureFile(strings.NewReader("1\n"))
	assert.ErrorIs(t, err, cjkerr.ErrInvalidData)
}

func TestLoadFeatureFileTrains(t *testing.T) {
	l := NewLearner(0, 20)
	require.NoError(t, l.LoadFeatureFile(strings.NewReader(
		"1 UW1:a\n1 UW1:a\n-1 UW1:b\n-1 UW1:b\n")))
	metrics, err := l.Train(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, metrics.Accuracy)
}

func TestLoadFeatureFileRejectsInvalidLabel(t *testing.T) {
	l := NewLearner(0, 10)
	err := l.LoadFeatureFile(strings.NewReader("notanumber UW1:a\n"))
	assert.ErrorIs(t, err, cjkerr.ErrInvalidData)
}
