package wordvec

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/textmill/textcat/annotate"
	"github.com/textmill/textcat/internal/fold"
)

// MeanMatrix pools each document into one dense row: the element-wise mean
// of the table vectors of the document's alphabetic tokens, looked up
// lowercased. Tokens without a vector contribute nothing; a document where
// no token has a vector keeps an all-zero row. The result has one row per
// document and Dim columns, never a NaN.
func (t *Table) MeanMatrix(docs []*annotate.Doc) (*mat.Dense, error) {
	if len(docs) == 0 {
		return nil, errors.New("wordvec: no documents to pool")
	}
	m := mat.NewDense(len(docs), t.dim, nil)
	sum := make([]float64, t.dim)
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		clear(sum)
		n := 0
		for _, tok := range doc.Tokens() {
			if !tok.Alpha {
				continue
			}
			v, ok := t.Vector(fold.Lower(tok.Text))
			if !ok {
				continue
			}
			floats.Add(sum, v)
			n++
		}
		if n == 0 {
			continue
		}
		floats.Scale(1/float64(n), sum)
		m.SetRow(i, sum)
	}
	return m, nil
}
