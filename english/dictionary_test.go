package english

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/symspell-go/symspell-go/symspell"
)

func Test_Load_PopulatesIndex(t *testing.T) {
	idx, err := symspell.NewIndex(2, 7, 1)
	assert.NoError(t, err)

	assert.NoError(t, Load(idx))

	result := idx.Lookup("teh", symspell.Top, 2)
	assert.Len(t, result, 1)
	assert.Equal(t, "the", result[0].Term)
}

func Test_Load_PopulatesBigrams(t *testing.T) {
	idx, err := symspell.NewIndex(2, 7, 1)
	assert.NoError(t, err)
	assert.NoError(t, Load(idx))

	result := idx.LookupCompound("in the world", 2)
	assert.Len(t, result, 1)
	assert.Equal(t, "in the world", result[0].Term)
}
