package symspell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	warnings []string
}

func (c *captureLogger) Debugf(string, ...interface{}) {}
func (c *captureLogger) Warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, format)
}

func Test_LoadDictionary_SkipsMalformedLines(t *testing.T) {
	logger := &captureLogger{}
	idx, err := NewIndex(2, 7, 1, WithLogger(logger))
	assert.NoError(t, err)

	loaded, err := idx.LoadDictionary(strings.NewReader("house 10\nbadline\ncat notanumber\ndog 3\n"), 0, 1, " ")
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Len(t, logger.warnings, 2)

	result := idx.Lookup("house", Top, 0)
	assert.Len(t, result, 1)
}

func Test_LoadBigramDictionary_JoinsTwoFieldsWhenSeparatorIsSpace(t *testing.T) {
	idx, err := NewIndex(2, 7, 1)
	assert.NoError(t, err)

	loaded, err := idx.LoadBigramDictionary(strings.NewReader("in the 100\nof a 50\n"), 0, 2, " ")
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, int64(100), idx.bigrams["in the"])
}

func Test_LoadDictionaryFromFile_RoundTrips(t *testing.T) {
	idx, err := NewIndex(2, 7, 1)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "freq.txt")
	assert.NoError(t, os.WriteFile(path, []byte("house 10\ndog 3\n"), 0o644))

	loaded, err := idx.LoadDictionaryFromFile(path, 0, 1, " ")
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded)
}
