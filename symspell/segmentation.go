package symspell

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// Segment is one word of a WordSegmentation result.
type Segment struct {
	// Input is the original substring this segment was derived from, with
	// any leading whitespace and any internal spaces removed.
	Input string
	// Word is the corrected dictionary term chosen for this segment.
	Word string
}

// SegmentationResult holds the outcome of a WordSegmentation call.
type SegmentationResult struct {
	// Distance is the summed edit distance (plus one per inserted
	// separator) across every segment.
	Distance int
	// Probability is the summed log10 word-occurrence probability across
	// every segment, usable to rank alternative segmentations.
	Probability float64
	Segments    []Segment
}

// SegmentedString joins the original (uncorrected) substrings with spaces.
func (r SegmentationResult) SegmentedString() string {
	words := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		words[i] = s.Input
	}
	return strings.Join(words, " ")
}

// CorrectedString joins the corrected words with spaces.
func (r SegmentationResult) CorrectedString() string {
	words := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		words[i] = s.Word
	}
	return strings.Join(words, " ")
}

// segmentationOptions configures a single WordSegmentation call.
type segmentationOptions struct {
	maxSegmentationWordLength int
	maxEditDistance           int
	ignoreToken               func(string) bool
}

// SegmentationOption configures WordSegmentation behavior.
type SegmentationOption func(*segmentationOptions)

// WithMaxSegmentationWordLength caps the length, in runes, of any single
// candidate word considered during segmentation. Defaults to the index's
// longest known word.
func WithMaxSegmentationWordLength(n int) SegmentationOption {
	return func(o *segmentationOptions) { o.maxSegmentationWordLength = n }
}

// WithSegmentationMaxEditDistance caps the per-word edit distance used
// while segmenting. Defaults to the index's configured maximum.
func WithSegmentationMaxEditDistance(n int) SegmentationOption {
	return func(o *segmentationOptions) { o.maxEditDistance = n }
}

// WithSegmentationIgnoreToken forwards a WithIgnoreToken predicate to every
// per-part Lookup call made while segmenting.
func WithSegmentationIgnoreToken(f func(string) bool) SegmentationOption {
	return func(o *segmentationOptions) { o.ignoreToken = f }
}

// WordSegmentation divides input - which may be missing spaces or have
// erroneously placed spaces - into the most likely sequence of dictionary
// words, using an O(n) dynamic program over a circular buffer of
// candidate compositions sized to min(input length, maximum segmentation
// word length).
func (idx *Index) WordSegmentation(input string, opts ...SegmentationOption) (SegmentationResult, error) {
	o := &segmentationOptions{
		maxSegmentationWordLength: idx.maxWordLength,
		maxEditDistance:           idx.maxEditDistance,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.maxSegmentationWordLength <= 0 {
		return SegmentationResult{}, errors.New("symspell: index has no words loaded")
	}

	inputRunes := []rune(input)
	inputLen := len(inputRunes)
	if inputLen == 0 {
		return SegmentationResult{}, nil
	}

	arraySize := minInt(inputLen, o.maxSegmentationWordLength)
	circularIdx := -1

	type composition struct {
		segmentedString string
		correctedString string
		distanceSum     int
		probability     float64
	}
	compositions := make([]composition, arraySize)

	for i := 0; i < inputLen; i++ {
		jMax := minInt(inputLen-i, o.maxSegmentationWordLength)

		for j := 1; j <= jMax; j++ {
			part := string(inputRunes[i : i+j])

			separatorLength := 0
			partRunes := []rune(part)
			if unicode.IsSpace(partRunes[0]) {
				part = string(partRunes[1:])
			} else {
				separatorLength = 1
			}

			topEd := len([]rune(part))
			part = strings.ReplaceAll(part, " ", "")
			topEd -= len([]rune(part))

			var topResult string
			var topProbabilityLog float64

			var lookupOpts []LookupOption
			if o.ignoreToken != nil {
				lookupOpts = append(lookupOpts, WithIgnoreToken(o.ignoreToken))
			}
			suggestions := idx.Lookup(part, Top, o.maxEditDistance, lookupOpts...)
			if len(suggestions) > 0 {
				topResult = suggestions[0].Term
				topEd += suggestions[0].Distance
				topProbabilityLog = math.Log10(float64(suggestions[0].Count) / n)
			} else {
				topResult = part
				topEd += len([]rune(part))
				topProbabilityLog = math.Log10(10.0 / (n * math.Pow(10.0, float64(len([]rune(part))))))
			}

			destinationIdx := (j + circularIdx) % arraySize

			switch {
			case i == 0:
				compositions[destinationIdx] = composition{
					segmentedString: part,
					correctedString: topResult,
					distanceSum:     topEd,
					probability:     topProbabilityLog,
				}
			case j == o.maxSegmentationWordLength ||
				((compositions[circularIdx].distanceSum+topEd == compositions[destinationIdx].distanceSum ||
					compositions[circularIdx].distanceSum+separatorLength+topEd == compositions[destinationIdx].distanceSum) &&
					compositions[destinationIdx].probability < compositions[circularIdx].probability+topProbabilityLog) ||
				compositions[circularIdx].distanceSum+separatorLength+topEd < compositions[destinationIdx].distanceSum:
				compositions[destinationIdx] = composition{
					segmentedString: compositions[circularIdx].segmentedString + " " + part,
					correctedString: compositions[circularIdx].correctedString + " " + topResult,
					distanceSum:     compositions[circularIdx].distanceSum + separatorLength + topEd,
					probability:     compositions[circularIdx].probability + topProbabilityLog,
				}
			}
		}

		circularIdx++
		if circularIdx == arraySize {
			circularIdx = 0
		}
	}

	segmentedWords := strings.Split(compositions[circularIdx].segmentedString, " ")
	correctedWords := strings.Split(compositions[circularIdx].correctedString, " ")

	segments := make([]Segment, len(correctedWords))
	for i, word := range correctedWords {
		in := ""
		if i < len(segmentedWords) {
			in = segmentedWords[i]
		}
		segments[i] = Segment{Input: in, Word: word}
	}

	return SegmentationResult{
		Distance:    compositions[circularIdx].distanceSum,
		Probability: compositions[circularIdx].probability,
		Segments:    segments,
	}, nil
}
