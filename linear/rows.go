package linear

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// entry is one non-zero cell of a design-matrix row.
type entry struct {
	j int
	v float64
}

// rowNonZeroDoer is the per-row iteration interface of james-bowman
// sparse matrices (CSR). Matrices that implement it are walked without
// reading their zero cells.
type rowNonZeroDoer interface {
	DoRowNonZero(i int, fn func(i, j int, v float64))
}

// extractRows flattens x into per-row lists of non-zero entries, rejecting
// NaN and infinite values.
func extractRows(x mat.Matrix) ([][]entry, error) {
	n, d := x.Dims()
	rows := make([][]entry, n)

	if doer, ok := x.(rowNonZeroDoer); ok {
		var cellErr error
		for i := 0; i < n; i++ {
			doer.DoRowNonZero(i, func(_, j int, v float64) {
				if cellErr != nil || v == 0 {
					return
				}
				if math.IsNaN(v) || math.IsInf(v, 0) {
					cellErr = fmt.Errorf("linear: non-finite value at (%d, %d)", i, j)
					return
				}
				rows[i] = append(rows[i], entry{j: j, v: v})
			})
			if cellErr != nil {
				return nil, cellErr
			}
		}
		return rows, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v := x.At(i, j)
			if v == 0 {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("linear: non-finite value at (%d, %d)", i, j)
			}
			rows[i] = append(rows[i], entry{j: j, v: v})
		}
	}
	return rows, nil
}
