// Package symspell implements the core of a Symmetric Delete
// (SymSpell) spelling-correction engine: a dictionary-backed index that
// answers approximate-match queries in sublinear time, plus the compound
// correction and word-segmentation decoders layered on top of it.
package symspell

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Verbosity controls how many suggestions Lookup returns and how they are
// ordered.
type Verbosity int

const (
	// Top returns the single suggestion with the highest count among those
	// at the smallest edit distance found.
	Top Verbosity = iota
	// Closest returns every suggestion at the smallest edit distance found,
	// ordered by count.
	Closest
	// All returns every suggestion within maxEditDistance, ordered by
	// distance then count. Slower: no early termination.
	All
)

// n is the reference corpus size used to normalize counts into
// probabilities for compound lookup and word segmentation.
const n = 1024908267229.0

// Index is the symmetric-delete dictionary. Once built it is safe for
// concurrent Lookup/LookupCompound/WordSegmentation calls as long as no
// goroutine is concurrently calling CreateDictionaryEntry or a loader.
type Index struct {
	maxEditDistance int
	prefixLength    int
	countThreshold  int64
	maxWordLength   int

	words          map[string]int64
	belowThreshold map[string]int64
	deletes        map[string]map[string]struct{}

	bigrams        map[string]int64
	bigramCountMin int64

	logger Logger
}

// Option configures optional Index behavior at construction time.
type Option func(*Index)

// WithLogger attaches a Logger used to report malformed dictionary/bigram
// lines encountered by the loaders. The default is NewNopLogger().
func WithLogger(l Logger) Option {
	return func(idx *Index) {
		if l != nil {
			idx.logger = l
		}
	}
}

// NewIndex creates an empty Index. prefixLength must be >= maxEditDistance
// and >= 1; countThreshold and maxEditDistance must be >= 0.
func NewIndex(maxEditDistance, prefixLength int, countThreshold int64, opts ...Option) (*Index, error) {
	if maxEditDistance < 0 {
		return nil, errors.New("symspell: maxEditDistance must be >= 0")
	}
	if prefixLength < 1 {
		return nil, errors.New("symspell: prefixLength must be >= 1")
	}
	if prefixLength < maxEditDistance {
		return nil, errors.New("symspell: prefixLength must be >= maxEditDistance")
	}
	if countThreshold < 0 {
		return nil, errors.New("symspell: countThreshold must be >= 0")
	}

	idx := &Index{
		maxEditDistance: maxEditDistance,
		prefixLength:    prefixLength,
		countThreshold:  countThreshold,
		words:           make(map[string]int64),
		belowThreshold:  make(map[string]int64),
		deletes:         make(map[string]map[string]struct{}),
		bigrams:         make(map[string]int64),
		bigramCountMin:  math.MaxInt64,
		logger:          NewNopLogger(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx, nil
}

// MaxEditDistance returns the index's configured maximum edit distance.
func (idx *Index) MaxEditDistance() int { return idx.maxEditDistance }

// PrefixLength returns the index's configured prefix length.
func (idx *Index) PrefixLength() int { return idx.prefixLength }

// MaxWordLength returns the length, in runes, of the longest term currently
// promoted into the index.
func (idx *Index) MaxWordLength() int { return idx.maxWordLength }

// CreateDictionaryEntry inserts or accumulates a (term, count) pair.
// Returns true iff the term was newly promoted into the queryable Words
// table by this call.
func (idx *Index) CreateDictionaryEntry(term string, count int64) bool {
	if count <= 0 {
		if idx.countThreshold > 0 {
			return false
		}
		count = 0
	}

	if prev, found := idx.belowThreshold[term]; found {
		count = saturatingAdd(prev, count)
		if count >= idx.countThreshold {
			delete(idx.belowThreshold, term)
			// fall through to promotion below, using the accumulated count
		} else {
			idx.belowThreshold[term] = count
			return false
		}
	} else if prev, found := idx.words[term]; found {
		idx.words[term] = saturatingAdd(prev, count)
		return false
	} else if count < idx.countThreshold {
		idx.belowThreshold[term] = count
		return false
	}

	idx.words[term] = count
	if l := len([]rune(term)); l > idx.maxWordLength {
		idx.maxWordLength = l
	}

	for variant := range idx.editsPrefix(term) {
		bucket, ok := idx.deletes[variant]
		if !ok {
			bucket = make(map[string]struct{})
			idx.deletes[variant] = bucket
		}
		bucket[term] = struct{}{}
	}
	return true
}

// editsPrefix returns every delete variant of term's prefixLength prefix,
// including the empty string when the prefix is short enough, and the
// prefix itself.
func (idx *Index) editsPrefix(term string) map[string]struct{} {
	runes := []rune(term)
	variants := make(map[string]struct{})

	if len(runes) <= idx.maxEditDistance {
		variants[""] = struct{}{}
	}
	if len(runes) > idx.prefixLength {
		runes = runes[:idx.prefixLength]
	}
	variants[string(runes)] = struct{}{}
	idx.edits(runes, 0, variants)
	return variants
}

// edits recursively enumerates every unique string obtainable by deleting
// one character at a time from word, bounded by maxEditDistance.
func (idx *Index) edits(word []rune, editDistance int, variants map[string]struct{}) {
	editDistance++
	if len(word) <= 1 {
		return
	}
	for i := 0; i < len(word); i++ {
		variant := make([]rune, 0, len(word)-1)
		variant = append(variant, word[:i]...)
		variant = append(variant, word[i+1:]...)
		key := string(variant)
		if _, exists := variants[key]; !exists {
			variants[key] = struct{}{}
			if editDistance < idx.maxEditDistance {
				idx.edits(variant, editDistance, variants)
			}
		}
	}
}

// LoadDictionary streams (term, count) pairs from corpus into the index.
// Each line is split on separator (whitespace-delimited fields when
// separator is "" or " "); lines with fewer than max(termIndex,countIndex)+1
// fields, or with an unparseable count, are skipped and reported to the
// configured Logger.
func (idx *Index) LoadDictionary(r io.Reader, termIndex, countIndex int, separator string) (int, error) {
	scanner := bufio.NewScanner(r)
	loaded := 0
	minFields := maxInt(termIndex, countIndex) + 1

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		fields := splitFields(line, separator)
		if len(fields) < minFields {
			idx.logger.Warnf("symspell: dictionary line %d: expected >= %d fields, got %d, skipping", lineNo, minFields, len(fields))
			continue
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			idx.logger.Warnf("symspell: dictionary line %d: invalid count %q, skipping", lineNo, fields[countIndex])
			continue
		}
		idx.CreateDictionaryEntry(fields[termIndex], count)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// LoadBigramDictionary streams bigram frequency pairs into the index. When
// separator is " " (or ""), each line must yield >= 3 fields and the bigram
// key is field[termIndex] + " " + field[termIndex+1]; otherwise each line
// must yield >= 2 fields and the key is field[termIndex] (expected to
// already contain the joined bigram).
func (idx *Index) LoadBigramDictionary(r io.Reader, termIndex, countIndex int, separator string) (int, error) {
	scanner := bufio.NewScanner(r)
	loaded := 0
	spaceSplit := separator == "" || separator == " "

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		fields := splitFields(line, separator)

		var key string
		var countField string
		if spaceSplit {
			if len(fields) < 3 {
				idx.logger.Warnf("symspell: bigram line %d: expected >= 3 fields, got %d, skipping", lineNo, len(fields))
				continue
			}
			key = fields[termIndex] + " " + fields[termIndex+1]
			countField = fields[countIndex]
		} else {
			if len(fields) < 2 {
				idx.logger.Warnf("symspell: bigram line %d: expected >= 2 fields, got %d, skipping", lineNo, len(fields))
				continue
			}
			key = fields[termIndex]
			countField = fields[countIndex]
		}

		count, err := strconv.ParseInt(countField, 10, 64)
		if err != nil {
			idx.logger.Warnf("symspell: bigram line %d: invalid count %q, skipping", lineNo, countField)
			continue
		}
		idx.bigrams[key] = count
		if count < idx.bigramCountMin {
			idx.bigramCountMin = count
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// LoadDictionaryFromFile opens path and streams it through LoadDictionary.
func (idx *Index) LoadDictionaryFromFile(path string, termIndex, countIndex int, separator string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return idx.LoadDictionary(f, termIndex, countIndex, separator)
}

// LoadBigramDictionaryFromFile opens path and streams it through
// LoadBigramDictionary.
func (idx *Index) LoadBigramDictionaryFromFile(path string, termIndex, countIndex int, separator string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return idx.LoadBigramDictionary(f, termIndex, countIndex, separator)
}

func splitFields(line, separator string) []string {
	if separator == "" || separator == " " {
		return strings.Fields(line)
	}
	return strings.Split(line, separator)
}

// lookupOptions configures a single Lookup call.
type lookupOptions struct {
	includeUnknown bool
	ignoreToken    func(string) bool
	transferCasing bool
}

// LookupOption configures Lookup behavior.
type LookupOption func(*lookupOptions)

// WithIncludeUnknown appends a synthetic zero-count suggestion at
// distance maxEditDistance+1 when a Lookup call finds nothing.
func WithIncludeUnknown() LookupOption {
	return func(o *lookupOptions) { o.includeUnknown = true }
}

// WithIgnoreToken supplies a predicate; when it matches the query input,
// Lookup records an exact-match suggestion with count 1.
func WithIgnoreToken(f func(string) bool) LookupOption {
	return func(o *lookupOptions) { o.ignoreToken = f }
}

// WithTransferCasing lowercases the input for matching and re-applies the
// original input's casing to every returned term via transferCasingSimilar.
func WithTransferCasing() LookupOption {
	return func(o *lookupOptions) { o.transferCasing = true }
}

// Lookup returns spelling suggestions for input. maxEditDistance must be <=
// idx.MaxEditDistance(); Lookup panics otherwise, mirroring the
// caller-error contract of a misconfigured query.
func (idx *Index) Lookup(input string, verbosity Verbosity, maxEditDistance int, opts ...LookupOption) []Suggestion {
	if maxEditDistance > idx.maxEditDistance {
		panic("symspell: maxEditDistance exceeds the index's configured maximum")
	}

	o := &lookupOptions{}
	for _, opt := range opts {
		opt(o)
	}

	originalInput := input
	if o.transferCasing {
		input = strings.ToLower(input)
	}

	var results []Suggestion
	inputRunes := []rune(input)
	inputLen := len(inputRunes)

	if inputLen-maxEditDistance > idx.maxWordLength {
		return idx.finishLookup(results, o, originalInput, maxEditDistance)
	}

	if count, ok := idx.words[input]; ok {
		results = append(results, Suggestion{Term: input, Distance: 0, Count: count})
		if verbosity != All {
			return idx.finishLookup(results, o, originalInput, maxEditDistance)
		}
	}

	if o.ignoreToken != nil && o.ignoreToken(input) {
		results = append(results, Suggestion{Term: input, Distance: 0, Count: 1})
		if verbosity != All {
			return idx.finishLookup(results, o, originalInput, maxEditDistance)
		}
	}

	if maxEditDistance == 0 {
		return idx.finishLookup(results, o, originalInput, maxEditDistance)
	}

	consideredDeletes := make(map[string]struct{})
	consideredSuggestions := make(map[string]struct{})
	consideredSuggestions[input] = struct{}{}

	maxEditDistance2 := maxEditDistance
	candidatePointer := 0

	inputPrefixLen := inputLen
	var candidates []string
	if inputPrefixLen > idx.prefixLength {
		inputPrefixLen = idx.prefixLength
		candidates = append(candidates, string(inputRunes[:inputPrefixLen]))
	} else {
		candidates = append(candidates, input)
	}

	kernel := newDistanceKernel()

	for candidatePointer < len(candidates) {
		candidate := candidates[candidatePointer]
		candidatePointer++
		candidateRunes := []rune(candidate)
		candidateLen := len(candidateRunes)
		lengthDiff := inputPrefixLen - candidateLen

		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		if bucket, found := idx.deletes[candidate]; found {
			for suggestion := range bucket {
				if suggestion == input {
					continue
				}
				suggestionRunes := []rune(suggestion)
				suggestionLen := len(suggestionRunes)

				if absInt(suggestionLen-inputLen) > maxEditDistance2 ||
					suggestionLen < candidateLen ||
					(suggestionLen == candidateLen && suggestion != candidate) {
					continue
				}
				suggPrefixLen := minInt(suggestionLen, idx.prefixLength)
				if suggPrefixLen > inputPrefixLen && (suggPrefixLen-candidateLen) > maxEditDistance2 {
					continue
				}

				var distance int
				switch {
				case candidateLen == 0:
					distance = maxInt(inputLen, suggestionLen)
					if distance > maxEditDistance2 || !addToSet(consideredSuggestions, suggestion) {
						continue
					}
				case suggestionLen == 1:
					if strings.ContainsRune(input, suggestionRunes[0]) {
						distance = inputLen - 1
					} else {
						distance = inputLen
					}
					if distance > maxEditDistance2 || !addToSet(consideredSuggestions, suggestion) {
						continue
					}
				case idx.prefixLength-maxEditDistance == candidateLen:
					m := minInt(inputLen, suggestionLen) - idx.prefixLength
					if suffixNeighborhoodMismatch(inputRunes, suggestionRunes, m) {
						continue
					}
					if (verbosity != All && !deleteInSuggestionPrefix(candidateRunes, suggestionRunes, idx.prefixLength)) ||
						!addToSet(consideredSuggestions, suggestion) {
						continue
					}
					distance = kernel.Distance(input, suggestion, maxEditDistance2)
					if distance < 0 {
						continue
					}
				default:
					if (verbosity != All && !deleteInSuggestionPrefix(candidateRunes, suggestionRunes, idx.prefixLength)) ||
						!addToSet(consideredSuggestions, suggestion) {
						continue
					}
					distance = kernel.Distance(input, suggestion, maxEditDistance2)
					if distance < 0 {
						continue
					}
				}

				if distance > maxEditDistance2 {
					continue
				}

				count := idx.words[suggestion]
				si := Suggestion{Term: suggestion, Distance: distance, Count: count}

				if len(results) > 0 {
					switch verbosity {
					case Closest:
						if distance < maxEditDistance2 {
							results = results[:0]
						}
					case Top:
						if distance < maxEditDistance2 || count > results[0].Count {
							maxEditDistance2 = distance
							results[0] = si
						}
						continue
					}
				}

				if verbosity != All {
					maxEditDistance2 = distance
				}
				results = append(results, si)
			}
		}

		if lengthDiff < maxEditDistance && candidateLen <= idx.prefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				deleted := make([]rune, 0, candidateLen-1)
				deleted = append(deleted, candidateRunes[:i]...)
				deleted = append(deleted, candidateRunes[i+1:]...)
				del := string(deleted)
				if _, found := consideredDeletes[del]; !found {
					consideredDeletes[del] = struct{}{}
					candidates = append(candidates, del)
				}
			}
		}
	}

	sortSuggestions(results)
	return idx.finishLookup(results, o, originalInput, maxEditDistance)
}

func (idx *Index) finishLookup(results []Suggestion, o *lookupOptions, originalInput string, maxEditDistance int) []Suggestion {
	if o.includeUnknown && len(results) == 0 {
		results = append(results, Suggestion{Term: originalInput, Distance: maxEditDistance + 1, Count: 0})
	}
	if o.transferCasing {
		for i := range results {
			results[i].Term = transferCasingSimilar(originalInput, results[i].Term)
		}
	}
	return results
}

func sortSuggestions(s []Suggestion) {
	// Insertion sort: result sets stay small (a handful to a few dozen
	// candidates), so this is simpler than pulling in sort.Slice for a key
	// that's just (distance asc, count desc).
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && suggestionLess(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

func suggestionLess(a, b Suggestion) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Count > b.Count
}

// deleteInSuggestionPrefix reports whether every rune of deleteRunes
// appears, in order, within the first prefixLength runes of suggestion.
func deleteInSuggestionPrefix(deleteRunes, suggestionRunes []rune, prefixLength int) bool {
	if len(deleteRunes) == 0 {
		return true
	}
	suggestionLen := len(suggestionRunes)
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	j := 0
	for i := 0; i < len(deleteRunes); i++ {
		for j < suggestionLen && deleteRunes[i] != suggestionRunes[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}

// suffixNeighborhoodMismatch implements the prefix-exhausted suffix guard:
// it reports true (reject the candidate) when the trailing m characters of
// input and suggestion cannot be reconciled by a single adjacent
// transposition.
func suffixNeighborhoodMismatch(inputRunes, suggestionRunes []rune, m int) bool {
	if m <= 0 {
		return false
	}
	inputLen := len(inputRunes)
	suggestionLen := len(suggestionRunes)

	if m > 1 && string(inputRunes[inputLen-m+1:]) != string(suggestionRunes[suggestionLen-m+1:]) {
		return true
	}
	if inputRunes[inputLen-m] != suggestionRunes[suggestionLen-m] &&
		(inputRunes[inputLen-m-1] != suggestionRunes[suggestionLen-m] ||
			inputRunes[inputLen-m] != suggestionRunes[suggestionLen-m-1]) {
		return true
	}
	return false
}
