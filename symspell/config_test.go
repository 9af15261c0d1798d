package symspell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.MaxEditDistance)
	assert.Equal(t, 7, cfg.PrefixLength)
	assert.Equal(t, int64(1), cfg.CountThreshold)
}

func Test_LoadConfig_OverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("maxEditDistance: 3\nprefixLength: 5\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxEditDistance)
	assert.Equal(t, 5, cfg.PrefixLength)
	assert.Equal(t, int64(1), cfg.CountThreshold)
}

func Test_LoadConfig_EmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func Test_NewIndexFromConfig(t *testing.T) {
	idx, err := NewIndexFromConfig(Config{MaxEditDistance: 1, PrefixLength: 4, CountThreshold: 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, idx.MaxEditDistance())
	assert.Equal(t, 4, idx.PrefixLength())
}
