package symspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSegmentationTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(2, 7, 1)
	assert.NoError(t, err)
	for _, w := range []string{"this", "is", "a", "test"} {
		idx.CreateDictionaryEntry(w, 1000)
	}
	return idx
}

func Test_WordSegmentation_SplitsConcatenatedWords(t *testing.T) {
	idx := newSegmentationTestIndex(t)
	// With edit distance 0 no part is corrected, so "isa" cannot stand in
	// for "is" and the exact four-word split wins on distance.
	result, err := idx.WordSegmentation("thisisatest", WithSegmentationMaxEditDistance(0))
	assert.NoError(t, err)
	assert.Equal(t, "this is a test", result.CorrectedString())
}

func Test_WordSegmentation_EmptyInputReturnsEmptyResult(t *testing.T) {
	idx := newSegmentationTestIndex(t)
	result, err := idx.WordSegmentation("")
	assert.NoError(t, err)
	assert.Empty(t, result.Segments)
}

func Test_WordSegmentation_ErrorsOnEmptyIndex(t *testing.T) {
	idx, err := NewIndex(2, 7, 1)
	assert.NoError(t, err)
	_, err = idx.WordSegmentation("anything")
	assert.Error(t, err)
}

func Test_WordSegmentation_AlreadySpacedInputRoundTrips(t *testing.T) {
	idx := newSegmentationTestIndex(t)
	result, err := idx.WordSegmentation("this is a test")
	assert.NoError(t, err)
	assert.Equal(t, "this is a test", result.CorrectedString())
}
