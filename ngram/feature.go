package ngram

import "strings"

// PersonMark is the feature emitted in place of any token inside a
// person-named entity, collapsing all person names into one feature.
const PersonMark = "-person-"

// Feature is a unigram or bigram key. A unigram is a single processed
// token; a bigram is two processed tokens joined by a single space.
type Feature string

// IsBigram reports whether the feature is a bigram key.
func (f Feature) IsBigram() bool {
	return strings.ContainsRune(string(f), ' ')
}

// Parts returns the processed tokens of the feature: one element for a
// unigram, two for a bigram.
func (f Feature) Parts() []string {
	return strings.Split(string(f), " ")
}

// Counts maps each feature to its occurrence count within one document.
type Counts map[Feature]int

// Count tallies a feature stream into per-feature counts.
// Returns nil if the input is nil.
func Count(features []Feature) Counts {
	if features == nil {
		return nil
	}
	c := make(Counts, len(features))
	for _, f := range features {
		c[f]++
	}
	return c
}
