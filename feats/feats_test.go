package feats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/cjkseg/chartype"
)

func TestAttributesJapaneseSchema(t *testing.T) {
	tags := []string{"U", "U", "U", "U", "U", "U", "U"}
	chars := []string{"B3", "B2", "B1", "あ", "い", "う", "E1"}
	types := []string{"O", "O", "O", "O", "I", "I", "O"}

	attrs := Attributes(4, tags, chars, types, chartype.Japanese)

	for _, want := range []string{"UW4:い", "UC4:I", "UP3:U", "WC1:あI", "WC2:Oい", "WC3:あO", "WC4:いI"} {
		_, ok := attrs[want]
		assert.True(t, ok, "missing feature %s", want)
	}
	assert.Len(t, attrs, 42)
}

func TestAttributesKoreanOmitsMixedFeatures(t *testing.T) {
	tags := []string{"U", "U", "U", "U", "U", "U", "U"}
	chars := []string{"B3", "B2", "B1", "한", "국", "어", "E1"}
	types := []string{"O", "O", "O", "S", "S", "S", "O"}

	attrs := Attributes(4, tags, chars, types, chartype.Korean)

	_, ok := attrs["WC1:한S"]
	assert.False(t, ok)
	assert.Len(t, attrs, 38)
}

func TestSetSortedIsLexicographic(t *testing.T) {
	s := Set{"UW1:b": {}, "UW1:a": {}, "AAA": {}}
	assert.Equal(t, []string{"AAA", "UW1:a", "UW1:b"}, s.Sorted())
}
