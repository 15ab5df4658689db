package bow

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

// TFIDF reweights raw counts by inverse document frequency. It wraps
// nlp.TfidfTransformer, whose native orientation is terms-by-documents;
// matrices here are documents-by-features, so inputs and outputs are
// transposed at the boundary.
//
// Fit learns the per-feature weights from training counts; Transform
// applies them, so test documents are weighted by training-set document
// frequencies.
type TFIDF struct {
	transformer *nlp.TfidfTransformer
}

// NewTFIDF returns an unfitted TFIDF.
func NewTFIDF() *TFIDF {
	return &TFIDF{}
}

// Fit learns inverse document frequencies from the count matrix.
func (t *TFIDF) Fit(counts mat.Matrix) error {
	r, c := counts.Dims()
	if r == 0 || c == 0 {
		return fmt.Errorf("bow: cannot fit tf-idf on %dx%d matrix", r, c)
	}
	t.transformer = nlp.NewTfidfTransformer()
	t.transformer.Fit(counts.T())
	return nil
}

// Transform reweights a count matrix with the fitted frequencies.
// The input must have the same number of columns the transformer was
// fitted with.
func (t *TFIDF) Transform(counts mat.Matrix) (mat.Matrix, error) {
	if t.transformer == nil {
		return nil, fmt.Errorf("bow: tf-idf transform before fit")
	}
	weighted, err := t.transformer.Transform(counts.T())
	if err != nil {
		return nil, fmt.Errorf("bow: tf-idf transform: %w", err)
	}
	return weighted.T(), nil
}

// FitTransform fits on counts and returns the reweighted matrix.
func (t *TFIDF) FitTransform(counts mat.Matrix) (mat.Matrix, error) {
	if err := t.Fit(counts); err != nil {
		return nil, err
	}
	return t.Transform(counts)
}
