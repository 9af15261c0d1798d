package symspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Distance_IdenticalStringsAreZero(t *testing.T) {
	k := newDistanceKernel()
	assert.Equal(t, 0, k.Distance("house", "house", 2))
}

func Test_Distance_EmptyStringsUseLength(t *testing.T) {
	k := newDistanceKernel()
	assert.Equal(t, 3, k.Distance("", "cat", 3))
	assert.Equal(t, -1, k.Distance("", "cat", 2))
}

func Test_Distance_SingleTransposition(t *testing.T) {
	k := newDistanceKernel()
	assert.Equal(t, 1, k.Distance("ab", "ba", 2))
}

func Test_Distance_OSAForbidsDoubleEditOnSameSubstring(t *testing.T) {
	// True Damerau-Levenshtein would score "ca" -> "abc" at 2 (transpose
	// then insert); OSA forbids touching the same substring twice and
	// scores it 3.
	k := newDistanceKernel()
	assert.Equal(t, 3, k.Distance("ca", "abc", 3))
}

func Test_Distance_ExceedsMaxDistanceReturnsNegativeOne(t *testing.T) {
	k := newDistanceKernel()
	assert.Equal(t, -1, k.Distance("kitten", "sitting", 2))
}

func Test_Distance_BandedAndFullPathsAgree(t *testing.T) {
	k := newDistanceKernel()
	// maxDistance 3 < 7 (residue length) takes the banded path; 7 takes the
	// full path.
	banded := k.Distance("kitten", "sitting", 3)
	full := k.Distance("kitten", "sitting", 7)
	assert.Equal(t, banded, full)
}

func Test_Distance_CommonAffixesAreTrimmed(t *testing.T) {
	k := newDistanceKernel()
	assert.Equal(t, 1, k.Distance("prefixab", "prefixba", 2))
}
