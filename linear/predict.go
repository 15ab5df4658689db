package linear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NumClasses returns the number of classes the model was fit with, or 0
// before Fit.
func (m *LogisticRegression) NumClasses() int { return m.classes }

// NumFeatures returns the input dimensionality the model was fit with, or
// 0 before Fit.
func (m *LogisticRegression) NumFeatures() int { return m.dim }

// Coefficients returns a classes x features copy of the trained weights.
func (m *LogisticRegression) Coefficients() *mat.Dense {
	if m.params == nil {
		return nil
	}
	stride := m.dim + 1
	w := mat.NewDense(m.classes, m.dim, nil)
	for c := 0; c < m.classes; c++ {
		w.SetRow(c, m.params[c*stride:c*stride+m.dim])
	}
	return w
}

// Intercepts returns a copy of the per-class bias terms.
func (m *LogisticRegression) Intercepts() []float64 {
	if m.params == nil {
		return nil
	}
	stride := m.dim + 1
	out := make([]float64, m.classes)
	for c := range out {
		out[c] = m.params[c*stride+m.dim]
	}
	return out
}

// ready rejects prediction calls before Fit or with mismatched input.
func (m *LogisticRegression) ready(x mat.Matrix) error {
	if m.params == nil {
		return errors.New("linear: predict before fit")
	}
	n, d := x.Dims()
	if n == 0 {
		return errors.New("linear: no rows to predict")
	}
	if d != m.dim {
		return fmt.Errorf("linear: input has %d features, model was fit with %d", d, m.dim)
	}
	return nil
}

// Decision returns the raw class scores (logits): one row per input row,
// one column per class.
func (m *LogisticRegression) Decision(x mat.Matrix) (*mat.Dense, error) {
	if err := m.ready(x); err != nil {
		return nil, err
	}
	rows, err := extractRows(x)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(len(rows), m.classes, nil)
	z := make([]float64, m.classes)
	for i, row := range rows {
		scoreInto(m.params, m.dim+1, row, z)
		out.SetRow(i, z)
	}
	return out, nil
}

// PredictProba returns softmax class probabilities, one row per input row.
// Each row sums to 1.
func (m *LogisticRegression) PredictProba(x mat.Matrix) (*mat.Dense, error) {
	scores, err := m.Decision(x)
	if err != nil {
		return nil, err
	}
	n, _ := scores.Dims()
	for i := 0; i < n; i++ {
		row := scores.RawRowView(i)
		lse := floats.LogSumExp(row)
		for j, v := range row {
			row[j] = math.Exp(v - lse)
		}
	}
	return scores, nil
}

// Predict returns the highest-scoring class index per row. Ties resolve
// to the lowest class index.
func (m *LogisticRegression) Predict(x mat.Matrix) ([]int, error) {
	scores, err := m.Decision(x)
	if err != nil {
		return nil, err
	}
	n, _ := scores.Dims()
	out := make([]int, n)
	for i := range out {
		out[i] = floats.MaxIdx(scores.RawRowView(i))
	}
	return out, nil
}

// Score predicts x and returns the fraction of rows whose prediction
// equals the corresponding label in y.
func (m *LogisticRegression) Score(x mat.Matrix, y []int) (float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return 0, err
	}
	if len(y) != len(pred) {
		return 0, fmt.Errorf("linear: %d rows but %d labels", len(pred), len(y))
	}
	correct := 0
	for i, p := range pred {
		if p == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(pred)), nil
}
