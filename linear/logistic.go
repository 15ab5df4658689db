// Package linear fits and applies multinomial logistic regression.
//
// The model is the standard softmax classifier: one weight vector and one
// bias per class, trained by minimizing the mean cross-entropy over the
// training rows plus an L2 penalty on the weights (biases are not
// penalized). C is the inverse regularization strength, so a larger C
// means a weaker penalty. Minimization uses the L-BFGS implementation in
// gonum/optimize with all-zero initialization, so Fit is deterministic
// for a fixed input.
//
// Fit accepts any mat.Matrix; sparse matrices that expose per-row
// non-zero iteration (sparse.CSR) are walked without densifying. After a
// successful Fit the model is read-only: Predict, PredictProba, Decision
// and Score are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Labels must be dense integers 0..K-1; mapping class names to
//     indices is the caller's concern (see corpus.Collection).
//   - Training is single-threaded; the optimizer evaluates one objective
//     and one gradient at a time.
//   - No warm starts: every Fit re-optimizes from zero.
package linear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Defaults applied by NewLogisticRegression and by Fit when the
// corresponding field is zero or negative.
const (
	DefaultC       = 1.0
	DefaultMaxIter = 100
	DefaultTol     = 1e-4
)

// LogisticRegression is a softmax classifier with L2 regularization.
// Configure the exported fields before calling Fit; the zero value is
// usable and trains with the package defaults.
type LogisticRegression struct {
	// C is the inverse regularization strength. Must be positive;
	// zero or negative selects DefaultC.
	C float64
	// MaxIter caps the number of L-BFGS major iterations.
	MaxIter int
	// Tol is the infinity-norm gradient threshold that stops training.
	Tol float64

	classes int
	dim     int
	// params holds the trained parameters, one (weights, bias) block of
	// dim+1 values per class.
	params []float64
}

// NewLogisticRegression returns a classifier with the package defaults.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{C: DefaultC, MaxIter: DefaultMaxIter, Tol: DefaultTol}
}

// Fit trains the classifier on x (one row per document) and y (one class
// index per row). Labels must cover 0..K-1 with K >= 2; rows must be
// finite. Hitting MaxIter is not an error: the best iterate seen is kept,
// like any other early stop on a configured limit.
func (m *LogisticRegression) Fit(x mat.Matrix, y []int) error {
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return errors.New("linear: empty design matrix")
	}
	if len(y) != n {
		return fmt.Errorf("linear: %d rows but %d labels", n, len(y))
	}
	k, err := classCount(y)
	if err != nil {
		return err
	}
	rows, err := extractRows(x)
	if err != nil {
		return err
	}

	c := m.C
	if c <= 0 {
		c = DefaultC
	}
	maxIter := m.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	tol := m.Tol
	if tol <= 0 {
		tol = DefaultTol
	}

	lambda := 1 / (c * float64(n))
	problem := softmaxObjective(rows, y, k, d, lambda)
	x0 := make([]float64, k*(d+1))
	settings := &optimize.Settings{
		GradientThreshold: tol,
		MajorIterations:   maxIter,
	}

	result, optErr := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if result == nil || len(result.Location.X) == 0 {
		if optErr != nil {
			return fmt.Errorf("linear: fit: %w", optErr)
		}
		return errors.New("linear: fit produced no solution")
	}
	switch result.Status {
	case optimize.Failure, optimize.NotTerminated:
		if optErr != nil {
			return fmt.Errorf("linear: fit: %w", optErr)
		}
		return fmt.Errorf("linear: fit stopped without a solution (%v)", result.Status)
	}

	m.classes = k
	m.dim = d
	m.params = result.Location.X
	return nil
}

// classCount validates that y is a dense 0..K-1 labeling and returns K.
func classCount(y []int) (int, error) {
	maxLabel := -1
	for i, c := range y {
		if c < 0 {
			return 0, fmt.Errorf("linear: negative class %d at row %d", c, i)
		}
		if c > maxLabel {
			maxLabel = c
		}
	}
	k := maxLabel + 1
	if k < 2 {
		return 0, errors.New("linear: need at least two classes")
	}
	seen := make([]bool, k)
	for _, c := range y {
		seen[c] = true
	}
	for c, ok := range seen {
		if !ok {
			return 0, fmt.Errorf("linear: class %d has no training rows", c)
		}
	}
	return k, nil
}

// softmaxObjective builds the optimization problem: mean cross-entropy
// over rows plus 0.5*lambda*|W|^2 with biases excluded from the penalty.
// Parameters are laid out as k blocks of dim weights followed by a bias.
func softmaxObjective(rows [][]entry, y []int, k, dim int, lambda float64) optimize.Problem {
	n := float64(len(rows))
	stride := dim + 1

	return optimize.Problem{
		Func: func(params []float64) float64 {
			z := make([]float64, k)
			var loss float64
			for i, row := range rows {
				scoreInto(params, stride, row, z)
				loss += floats.LogSumExp(z) - z[y[i]]
			}
			loss /= n

			var reg float64
			for c := 0; c < k; c++ {
				base := c * stride
				for j := 0; j < dim; j++ {
					w := params[base+j]
					reg += w * w
				}
			}
			return loss + 0.5*lambda*reg
		},
		Grad: func(grad, params []float64) {
			for i := range grad {
				grad[i] = 0
			}
			z := make([]float64, k)
			invN := 1 / n
			for i, row := range rows {
				scoreInto(params, stride, row, z)
				softmaxInPlace(z)
				for c := 0; c < k; c++ {
					p := z[c]
					if c == y[i] {
						p--
					}
					p *= invN
					base := c * stride
					for _, e := range row {
						grad[base+e.j] += p * e.v
					}
					grad[base+dim] += p
				}
			}
			for c := 0; c < k; c++ {
				base := c * stride
				for j := 0; j < dim; j++ {
					grad[base+j] += lambda * params[base+j]
				}
			}
		},
	}
}

// scoreInto fills z with the raw class scores of one extracted row.
func scoreInto(params []float64, stride int, row []entry, z []float64) {
	for c := range z {
		base := c * stride
		s := params[base+stride-1]
		for _, e := range row {
			s += params[base+e.j] * e.v
		}
		z[c] = s
	}
}

// softmaxInPlace turns raw scores into probabilities, stabilized through
// the log-sum-exp.
func softmaxInPlace(z []float64) {
	lse := floats.LogSumExp(z)
	for i, v := range z {
		z[i] = math.Exp(v - lse)
	}
}
