package bow

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/textmill/textcat/ngram"
)

// CountMatrix builds the sparse bag-of-ngrams matrix for the given
// feature streams: one row per document, one column per vocabulary
// feature, entries are raw occurrence counts. Features outside the
// vocabulary are ignored, which drops unseen test-time features.
// Returns an error when there are no documents or the vocabulary is
// empty, since a zero-dimension matrix cannot be built.
func CountMatrix(streams [][]ngram.Feature, v *Vocabulary) (*sparse.CSR, error) {
	rows, cols := len(streams), v.Size()
	if rows == 0 {
		return nil, fmt.Errorf("bow: no documents to count")
	}
	if cols == 0 {
		return nil, fmt.Errorf("bow: empty vocabulary")
	}

	dok := sparse.NewDOK(rows, cols)
	for i, stream := range streams {
		for _, f := range stream {
			if j, ok := v.index[f]; ok {
				dok.Set(i, j, dok.At(i, j)+1)
			}
		}
	}
	return dok.ToCSR(), nil
}
