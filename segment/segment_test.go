package segment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/cjkseg/boost"
	"github.com/czcorpus/cjkseg/chartype"
	"github.com/czcorpus/cjkseg/corpus"
)

func trainedSegmenter(t *testing.T, lines ...string) *Segmenter {
	t.Helper()
	classifier := chartype.NewClassifier(chartype.Japanese)
	learner := boost.NewLearner(0, 50)
	for _, line := range lines {
		require.NoError(t, corpus.Walk(line, classifier, learner.AddInstance))
	}
	_, err := learner.Train(context.Background())
	require.NoError(t, err)
	return New(classifier, learner)
}

func TestSegmentEmptySentence(t *testing.T) {
	s := trainedSegmenter(t, "これ は テスト です 。")
	assert.Equal(t, []string{}, s.Segment(""))
}

func TestSegmentSingleCharSentence(t *testing.T) {
	s := trainedSegmenter(t, "これ は テスト です 。")
	assert.Equal(t, []string{"あ"}, s.Segment("あ"))
}

func TestSegmentReproducesTrainingCorpus(t *testing.T) {
	s := trainedSegmenter(t,
		"これ は テスト です 。",
		"これ は テスト です 。",
		"これ は テスト です 。",
	)
	got := s.Segment("これはテストです。")
	assert.Equal(t, []string{"これ", "は", "テスト", "です", "。"}, got)
}
