package symspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompoundTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(2, 7, 1)
	assert.NoError(t, err)
	for _, w := range []string{"where", "is", "the", "love", "members", "recreation", "center"} {
		idx.CreateDictionaryEntry(w, 1000)
	}
	return idx
}

func Test_LookupCompound_CorrectsEachWordIndependently(t *testing.T) {
	idx := newCompoundTestIndex(t)
	result := idx.LookupCompound("wher is the loeve", 2)
	assert.Len(t, result, 1)
	assert.Equal(t, "where is the love", result[0].Term)
}

func Test_LookupCompound_RecombinesSplitWords(t *testing.T) {
	idx := newCompoundTestIndex(t)
	result := idx.LookupCompound("wh ere is the love", 2)
	assert.Len(t, result, 1)
	assert.Equal(t, "where is the love", result[0].Term)
}

func Test_LookupCompound_IgnoreNonWordsPassesThroughNumerics(t *testing.T) {
	idx := newCompoundTestIndex(t)
	result := idx.LookupCompound("the love 42", 2, WithIgnoreNonWords())
	assert.Len(t, result, 1)
	assert.Contains(t, result[0].Term, "42")
}

func Test_LookupCompound_WhitespaceOnlyInputYieldsEmptyJoinAtInputDistance(t *testing.T) {
	idx := newCompoundTestIndex(t)
	result := idx.LookupCompound("   ", 2)
	assert.Len(t, result, 1)
	assert.Equal(t, "", result[0].Term)
	assert.Equal(t, 3, result[0].Distance)
}

func Test_UnknownWordCount_DecreasesWithLength(t *testing.T) {
	assert.Greater(t, unknownWordCount("a"), unknownWordCount("abcdefgh"))
}
