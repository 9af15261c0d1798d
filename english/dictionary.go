// Package english bundles a small sample English unigram/bigram frequency
// list, embedded at build time, so a caller can get a working symspell
// index without sourcing their own corpus.
package english

import (
	_ "embed"
	"strings"

	"github.com/symspell-go/symspell-go/symspell"
)

//go:embed freq.txt
var freqRaw string

//go:embed bigrams.txt
var bigramsRaw string

// Load streams the embedded sample unigram and bigram frequency lists into
// idx via its public loaders. It is meant for getting-started use and demos;
// production deployments should load a real corpus with
// symspell.Index.LoadDictionary / LoadBigramDictionary instead.
func Load(idx *symspell.Index) error {
	if _, err := idx.LoadDictionary(strings.NewReader(freqRaw), 0, 1, " "); err != nil {
		return err
	}
	if _, err := idx.LoadBigramDictionary(strings.NewReader(bigramsRaw), 0, 2, " "); err != nil {
		return err
	}
	return nil
}
