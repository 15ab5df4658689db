package linear

import (
	"fmt"
	"math"
	"testing"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// blobs is a linearly separable two-class set: class 0 near the origin,
// class 1 shifted by +4 on both axes.
func blobs() (*mat.Dense, []int) {
	x := mat.NewDense(8, 2, []float64{
		0.0, 0.2,
		0.3, 0.0,
		-0.2, 0.1,
		0.1, -0.3,
		4.0, 4.2,
		4.3, 3.9,
		3.8, 4.1,
		4.1, 4.4,
	})
	return x, []int{0, 0, 0, 0, 1, 1, 1, 1}
}

// oneHot builds reps copies of each k-dimensional unit row, labeled by the
// hot column.
func oneHot(k, reps int) (*mat.Dense, []int) {
	x := mat.NewDense(k*reps, k, nil)
	y := make([]int, k*reps)
	for c := 0; c < k; c++ {
		for r := 0; r < reps; r++ {
			i := c*reps + r
			x.Set(i, c, 1)
			y[i] = c
		}
	}
	return x, y
}

func TestFit_SeparableBinary(t *testing.T) {
	x, y := blobs()
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if got, want := m.NumClasses(), 2; got != want {
		t.Errorf("NumClasses() = %d, want %d", got, want)
	}
	if got, want := m.NumFeatures(), 2; got != want {
		t.Errorf("NumFeatures() = %d, want %d", got, want)
	}
	acc, err := m.Score(x, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if acc != 1 {
		t.Errorf("train accuracy = %v, want 1 on separable data", acc)
	}
}

func TestFit_ThreeClasses(t *testing.T) {
	x, y := oneHot(3, 4)
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	pred, err := m.Predict(x)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i := range y {
		if pred[i] != y[i] {
			t.Errorf("pred[%d] = %d, want %d", i, pred[i], y[i])
		}
	}
}

func TestFit_SparseInput(t *testing.T) {
	dense := mat.NewDense(6, 3, []float64{
		2, 1, 0,
		3, 0, 1,
		0, 2, 1,
		1, 3, 0,
		0, 1, 2,
		1, 0, 3,
	})
	y := []int{0, 0, 1, 1, 2, 2}

	dok := sparse.NewDOK(6, 3)
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			if v := dense.At(i, j); v != 0 {
				dok.Set(i, j, v)
			}
		}
	}
	csr := dok.ToCSR()

	ms := NewLogisticRegression()
	if err := ms.Fit(csr, y); err != nil {
		t.Fatalf("Fit(sparse): %v", err)
	}
	md := NewLogisticRegression()
	if err := md.Fit(dense, y); err != nil {
		t.Fatalf("Fit(dense): %v", err)
	}

	ps, err := ms.Predict(csr)
	if err != nil {
		t.Fatalf("Predict(sparse): %v", err)
	}
	pd, err := md.Predict(dense)
	if err != nil {
		t.Fatalf("Predict(dense): %v", err)
	}
	for i := range ps {
		if ps[i] != pd[i] {
			t.Errorf("row %d: sparse pred %d, dense pred %d", i, ps[i], pd[i])
		}
		if ps[i] != y[i] {
			t.Errorf("row %d: pred %d, want %d", i, ps[i], y[i])
		}
	}
}

func TestFit_Errors(t *testing.T) {
	good := mat.NewDense(4, 2, []float64{1, 0, 1, 1, 0, 1, 0, 0})

	tests := []struct {
		name string
		x    mat.Matrix
		y    []int
	}{
		{"empty design matrix", &mat.Dense{}, nil},
		{"label count mismatch", good, []int{0, 1}},
		{"single class", good, []int{0, 0, 0, 0}},
		{"gap in class labels", good, []int{0, 2, 0, 2}},
		{"negative class", good, []int{0, -1, 0, 1}},
		{"NaN feature", mat.NewDense(2, 2, []float64{1, math.NaN(), 0, 1}), []int{0, 1}},
		{"infinite feature", mat.NewDense(2, 2, []float64{1, 0, math.Inf(1), 1}), []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLogisticRegression()
			if err := m.Fit(tt.x, tt.y); err == nil {
				t.Fatal("Fit error = nil, want error")
			}
		})
	}
}

func TestPredictBeforeFit(t *testing.T) {
	m := NewLogisticRegression()
	x := mat.NewDense(1, 2, []float64{1, 2})
	if _, err := m.Predict(x); err == nil {
		t.Error("Predict before Fit: error = nil, want error")
	}
	if _, err := m.PredictProba(x); err == nil {
		t.Error("PredictProba before Fit: error = nil, want error")
	}
	if _, err := m.Decision(x); err == nil {
		t.Error("Decision before Fit: error = nil, want error")
	}
	if _, err := m.Score(x, []int{0}); err == nil {
		t.Error("Score before Fit: error = nil, want error")
	}
	if m.Coefficients() != nil {
		t.Error("Coefficients before Fit != nil")
	}
	if m.Intercepts() != nil {
		t.Error("Intercepts before Fit != nil")
	}
}

func TestPredict_DimensionMismatch(t *testing.T) {
	x, y := blobs()
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, err := m.Predict(mat.NewDense(1, 3, []float64{1, 2, 3})); err == nil {
		t.Fatal("Predict with wrong width: error = nil, want error")
	}
}

func TestPredictProba_RowsSumToOne(t *testing.T) {
	x, y := oneHot(3, 3)
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	probs, err := m.PredictProba(x)
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	n, k := probs.Dims()
	if k != 3 {
		t.Fatalf("PredictProba width = %d, want 3", k)
	}
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < k; j++ {
			p := probs.At(i, j)
			if p <= 0 || p >= 1 {
				t.Errorf("prob (%d, %d) = %v, want in (0, 1)", i, j, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d sums to %v, want 1", i, sum)
		}
	}
}

func TestDecision_AgreesWithPredict(t *testing.T) {
	x, y := blobs()
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	scores, err := m.Decision(x)
	if err != nil {
		t.Fatalf("Decision: %v", err)
	}
	pred, err := m.Predict(x)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	n, k := scores.Dims()
	if k != m.NumClasses() {
		t.Fatalf("Decision width = %d, want %d", k, m.NumClasses())
	}
	for i := 0; i < n; i++ {
		best := 0
		for j := 1; j < k; j++ {
			if scores.At(i, j) > scores.At(i, best) {
				best = j
			}
		}
		if pred[i] != best {
			t.Errorf("row %d: Predict = %d, argmax(Decision) = %d", i, pred[i], best)
		}
	}
}

func TestFit_Deterministic(t *testing.T) {
	x, y := blobs()
	var coefs []*mat.Dense
	for i := 0; i < 3; i++ {
		m := NewLogisticRegression()
		if err := m.Fit(x, y); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		coefs = append(coefs, m.Coefficients())
	}
	for i := 1; i < len(coefs); i++ {
		if !mat.Equal(coefs[0], coefs[i]) {
			t.Fatalf("fit %d produced different coefficients", i)
		}
	}
}

func TestFit_RegularizationShrinksWeights(t *testing.T) {
	x, y := blobs()

	weak := NewLogisticRegression()
	weak.C = 100
	if err := weak.Fit(x, y); err != nil {
		t.Fatalf("Fit(C=100): %v", err)
	}
	strong := NewLogisticRegression()
	strong.C = 0.01
	if err := strong.Fit(x, y); err != nil {
		t.Fatalf("Fit(C=0.01): %v", err)
	}

	wn := mat.Norm(weak.Coefficients(), 2)
	sn := mat.Norm(strong.Coefficients(), 2)
	if sn >= wn {
		t.Errorf("norm with C=0.01 is %v, want smaller than %v with C=100", sn, wn)
	}
}

func TestSoftmaxObjective_GradientMatchesFiniteDifference(t *testing.T) {
	rows := [][]entry{
		{{j: 0, v: 1.5}, {j: 2, v: -0.5}},
		{{j: 1, v: 2.0}},
		{{j: 0, v: -1.0}, {j: 1, v: 0.5}, {j: 2, v: 1.0}},
		{{j: 2, v: 0.25}},
	}
	y := []int{0, 1, 2, 1}
	const k, dim = 3, 3
	problem := softmaxObjective(rows, y, k, dim, 0.1)

	params := []float64{
		0.3, -0.2, 0.5, 0.1,
		-0.4, 0.6, 0.0, -0.3,
		0.2, 0.1, -0.6, 0.4,
	}
	got := make([]float64, len(params))
	problem.Grad(got, params)

	want := fd.Gradient(nil, problem.Func, params, &fd.Settings{Formula: fd.Central})
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("grad[%d] = %v, finite difference = %v", i, got[i], want[i])
		}
	}
}

func TestScore_LabelMismatch(t *testing.T) {
	x, y := blobs()
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, err := m.Score(x, y[:3]); err == nil {
		t.Fatal("Score with short labels: error = nil, want error")
	}
}

func ExampleLogisticRegression() {
	x := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		4, 4,
		4, 5,
	})
	m := NewLogisticRegression()
	if err := m.Fit(x, []int{0, 0, 1, 1}); err != nil {
		panic(err)
	}
	pred, _ := m.Predict(mat.NewDense(2, 2, []float64{0, 1, 5, 5}))
	fmt.Println(pred)
	// Output: [0 1]
}

func BenchmarkFit(b *testing.B) {
	x, y := oneHot(3, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewLogisticRegression()
		if err := m.Fit(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPredict(b *testing.B) {
	x, y := oneHot(3, 20)
	m := NewLogisticRegression()
	if err := m.Fit(x, y); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Predict(x); err != nil {
			b.Fatal(err)
		}
	}
}
