package symspell

import (
	"math"
	"strings"
)

// compoundOptions configures a single LookupCompound call.
type compoundOptions struct {
	ignoreNonWords bool
}

// CompoundOption configures LookupCompound behavior.
type CompoundOption func(*compoundOptions)

// WithIgnoreNonWords skips correction of tokens that are purely numeric or
// look like acronyms, passing them through unchanged.
func WithIgnoreNonWords() CompoundOption {
	return func(o *compoundOptions) { o.ignoreNonWords = true }
}

// termState tracks whether a term entering the combine check was itself
// produced by a previous combine step, so that two adjacent combines don't
// fire back to back.
type termState int

const (
	stateOpen termState = iota
	stateCombined
)

// LookupCompound corrects a multi-word input as a whole: every token is
// corrected independently, adjacent tokens are considered for recombination
// (e.g. "wh ere" -> "where"), and tokens without an exact dictionary match
// are considered for splitting into two dictionary words. The returned slice always has
// exactly one element, whose Term is the full reassembled correction.
func (idx *Index) LookupCompound(input string, maxEditDistance int, opts ...CompoundOption) []Suggestion {
	o := &compoundOptions{}
	for _, opt := range opts {
		opt(o)
	}

	terms := parseWords(input, false)

	var originalCaseTerms []string
	if o.ignoreNonWords {
		originalCaseTerms = parseWords(input, true)
	}

	var parts []Suggestion
	state := stateOpen
	kernel := newDistanceKernel()

	for i, term := range terms {
		if o.ignoreNonWords {
			originalTerm := term
			if i < len(originalCaseTerms) {
				originalTerm = originalCaseTerms[i]
			}
			if isNumeric(originalTerm) || isAcronym(originalTerm) {
				parts = append(parts, Suggestion{Term: originalTerm, Distance: 0, Count: 0})
				state = stateOpen
				continue
			}
		}

		suggestions := idx.Lookup(term, Top, maxEditDistance)

		if i > 0 && state != stateCombined {
			combined := terms[i-1] + term
			combinedSuggestions := idx.Lookup(combined, Top, maxEditDistance)

			if len(combinedSuggestions) > 0 {
				best1 := parts[len(parts)-1]
				best2 := fallbackSuggestion(suggestions, term, maxEditDistance)

				distance1 := best1.Distance + best2.Distance
				combinedBest := combinedSuggestions[0]
				if distance1 >= 0 &&
					(combinedBest.Distance+1 < distance1 ||
						(combinedBest.Distance+1 == distance1 &&
							float64(combinedBest.Count) > float64(best1.Count)/n*float64(best2.Count))) {
					combinedBest.Distance++
					parts[len(parts)-1] = combinedBest
					state = stateCombined
					continue
				}
			}
		}
		state = stateOpen

		if len(suggestions) > 0 && (suggestions[0].Distance == 0 || len([]rune(term)) == 1) {
			parts = append(parts, suggestions[0])
			continue
		}

		parts = append(parts, idx.bestSplit(term, suggestions, maxEditDistance, kernel))
	}

	var sb strings.Builder
	count := n
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Term)
		count *= float64(p.Count) / n
	}
	joined := strings.TrimSpace(sb.String())

	distance := kernel.Distance(input, joined, math.MaxInt32)

	return []Suggestion{{Term: joined, Distance: distance, Count: int64(count)}}
}

// fallbackSuggestion returns the best single-term suggestion, or a
// synthetic unknown-word estimate (distance maxEditDistance+1, count
// 10/10^len) when Lookup found nothing.
func fallbackSuggestion(suggestions []Suggestion, term string, maxEditDistance int) Suggestion {
	if len(suggestions) > 0 {
		return suggestions[0]
	}
	return Suggestion{
		Term:     term,
		Distance: maxEditDistance + 1,
		Count:    unknownWordCount(term),
	}
}

func unknownWordCount(term string) int64 {
	return int64(10 / math.Pow(10, float64(len([]rune(term)))))
}

// bestSplit tries every two-way split of term into dictionary words and
// returns the best-scoring one, falling back to the best whole-term
// suggestion (if any) or a synthetic unknown-word estimate.
func (idx *Index) bestSplit(term string, wholeTermSuggestions []Suggestion, maxEditDistance int, kernel *distanceKernel) Suggestion {
	var best *Suggestion
	if len(wholeTermSuggestions) > 0 {
		b := wholeTermSuggestions[0]
		best = &b
	}

	runes := []rune(term)
	if len(runes) <= 1 {
		if best != nil {
			return *best
		}
		return Suggestion{Term: term, Distance: maxEditDistance + 1, Count: unknownWordCount(term)}
	}

	for j := 1; j < len(runes); j++ {
		part1 := string(runes[:j])
		part2 := string(runes[j:])

		suggestions1 := idx.Lookup(part1, Top, maxEditDistance)
		if len(suggestions1) == 0 {
			continue
		}
		suggestions2 := idx.Lookup(part2, Top, maxEditDistance)
		if len(suggestions2) == 0 {
			continue
		}

		splitTerm := suggestions1[0].Term + " " + suggestions2[0].Term
		splitDistance := kernel.Distance(term, splitTerm, maxEditDistance)
		if splitDistance < 0 {
			splitDistance = maxEditDistance + 1
		}

		if best != nil {
			if splitDistance > best.Distance {
				continue
			}
			if splitDistance < best.Distance {
				best = nil
			}
		}

		splitCount := splitScore(term, suggestions1[0], suggestions2[0], wholeTermSuggestions, idx.bigrams, idx.bigramCountMin)
		candidate := Suggestion{Term: splitTerm, Distance: splitDistance, Count: splitCount}

		if best == nil || candidate.Count > best.Count {
			c := candidate
			best = &c
		}
	}

	if best != nil {
		return *best
	}
	return Suggestion{Term: term, Distance: maxEditDistance + 1, Count: unknownWordCount(term)}
}

// splitScore weights a candidate two-word split using the bigram
// dictionary when available, otherwise a Naive Bayes estimate P(AB) =
// P(A)*P(B) capped at the smallest bigram count. When the bigram is known,
// it also nudges the count up when the split matches (or partially
// matches) the best whole-term correction, so a real compound word isn't
// beaten by an unrelated pair of common words; the Naive Bayes estimate
// gets no such nudge.
func splitScore(term string, part1, part2 Suggestion, wholeTermSuggestions []Suggestion, bigrams map[string]int64, bigramCountMin int64) int64 {
	key := part1.Term + " " + part2.Term
	if bigramCount, ok := bigrams[key]; ok {
		score := bigramCount
		if len(wholeTermSuggestions) > 0 {
			whole := wholeTermSuggestions[0]
			if part1.Term+part2.Term == term {
				score = maxInt64(score, whole.Count+2)
			} else if part1.Term == whole.Term || part2.Term == whole.Term {
				score = maxInt64(score, whole.Count+1)
			}
		} else if part1.Term+part2.Term == term {
			score = maxInt64(score, maxInt64(part1.Count, part2.Count)+2)
		}
		return score
	}
	return minInt64(bigramCountMin, int64(float64(part1.Count)/n*float64(part2.Count)))
}
