package symspell

// Suggestion is a single spelling-correction candidate. Ordering key across
// a result set is (Distance asc, Count desc).
type Suggestion struct {
	Term     string
	Distance int
	Count    int64
}
