// Package bow builds the bag-of-ngrams representation: a fixed feature
// vocabulary learned from training documents and sparse count matrices
// whose rows are documents and whose columns follow the vocabulary order.
//
// Column order is lexicographic over the feature keys, so matrices built
// from the same corpus are identical across runs. Features absent from
// the vocabulary are silently ignored when counting, which is how unseen
// test-time features are dropped.
//
// All methods are safe for concurrent use once the vocabulary is built.
package bow

import (
	"sort"

	"github.com/textmill/textcat/ngram"
)

// Options controls vocabulary selection.
type Options struct {
	// MinDocCount drops features that appear in fewer documents.
	// Values below 1 are treated as 1.
	MinDocCount int

	// MaxFeatures caps the vocabulary size, keeping the features with the
	// highest document frequency (ties broken lexicographically).
	// Zero or negative means no cap.
	MaxFeatures int
}

// Vocabulary is an immutable feature-to-column mapping.
type Vocabulary struct {
	features []ngram.Feature
	docFreq  []int
	index    map[ngram.Feature]int
}

// BuildVocabulary learns a vocabulary from the feature streams of the
// training documents. The returned vocabulary may be empty when nothing
// passes the selection thresholds.
func BuildVocabulary(streams [][]ngram.Feature, opts Options) *Vocabulary {
	minDoc := opts.MinDocCount
	if minDoc < 1 {
		minDoc = 1
	}

	df := make(map[ngram.Feature]int)
	seen := make(map[ngram.Feature]bool)
	for _, stream := range streams {
		clear(seen)
		for _, f := range stream {
			if !seen[f] {
				seen[f] = true
				df[f]++
			}
		}
	}

	kept := make([]ngram.Feature, 0, len(df))
	for f, n := range df {
		if n >= minDoc {
			kept = append(kept, f)
		}
	}

	if opts.MaxFeatures > 0 && len(kept) > opts.MaxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if df[kept[i]] != df[kept[j]] {
				return df[kept[i]] > df[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:opts.MaxFeatures]
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })

	v := &Vocabulary{
		features: kept,
		docFreq:  make([]int, len(kept)),
		index:    make(map[ngram.Feature]int, len(kept)),
	}
	for i, f := range kept {
		v.index[f] = i
		v.docFreq[i] = df[f]
	}
	return v
}

// Size returns the number of features (matrix columns).
func (v *Vocabulary) Size() int {
	return len(v.features)
}

// Features returns the features in column order.
// The returned slice is a copy.
func (v *Vocabulary) Features() []ngram.Feature {
	out := make([]ngram.Feature, len(v.features))
	copy(out, v.features)
	return out
}

// Index returns the column of f and whether f is in the vocabulary.
func (v *Vocabulary) Index(f ngram.Feature) (int, bool) {
	i, ok := v.index[f]
	return i, ok
}

// DocFreq returns the number of training documents f appeared in, or 0
// if f is not in the vocabulary.
func (v *Vocabulary) DocFreq(f ngram.Feature) int {
	if i, ok := v.index[f]; ok {
		return v.docFreq[i]
	}
	return 0
}
