// Package metrics scores classifier predictions: accuracy, a confusion
// matrix, per-class precision/recall/F1, and a plain-text report.
//
// Functions take parallel prediction and truth slices and panic on length
// mismatch or out-of-range labels, following the gonum convention for
// programmer errors in numeric code.
package metrics

import (
	"fmt"
	"strings"
)

// Accuracy returns the fraction of positions where got equals want, or 0
// for empty input. Panics if the slices differ in length.
func Accuracy(got, want []int) float64 {
	if len(got) != len(want) {
		panic(fmt.Sprintf("metrics: %d predictions but %d labels", len(got), len(want)))
	}
	if len(got) == 0 {
		return 0
	}
	correct := 0
	for i, g := range got {
		if g == want[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(got))
}

// Precision is tp over predicted positives, or 0 when nothing was
// predicted positive.
func Precision(tp, predicted int) float64 {
	if predicted == 0 {
		return 0
	}
	return float64(tp) / float64(predicted)
}

// Recall is tp over actual positives, or 0 when the class has no support.
func Recall(tp, support int) float64 {
	if support == 0 {
		return 0
	}
	return float64(tp) / float64(support)
}

// F1 is the harmonic mean of precision and recall, or 0 when both are 0.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// Confusion is an n x n count table: rows are true classes, columns are
// predicted classes.
type Confusion struct {
	n      int
	counts []int
}

// NewConfusion tallies predictions against labels over n classes. Panics
// on length mismatch, non-positive n, or a label outside [0, n).
func NewConfusion(got, want []int, n int) *Confusion {
	if len(got) != len(want) {
		panic(fmt.Sprintf("metrics: %d predictions but %d labels", len(got), len(want)))
	}
	if n <= 0 {
		panic("metrics: confusion matrix needs at least one class")
	}
	c := &Confusion{n: n, counts: make([]int, n*n)}
	for i := range got {
		t, p := want[i], got[i]
		if t < 0 || t >= n || p < 0 || p >= n {
			panic(fmt.Sprintf("metrics: label (%d, %d) outside [0, %d) at row %d", t, p, n, i))
		}
		c.counts[t*n+p]++
	}
	return c
}

// Classes returns the number of classes n.
func (c *Confusion) Classes() int { return c.n }

// At returns the number of rows with true class t predicted as p.
func (c *Confusion) At(t, p int) int {
	if t < 0 || t >= c.n || p < 0 || p >= c.n {
		panic(fmt.Sprintf("metrics: index (%d, %d) outside [0, %d)", t, p, c.n))
	}
	return c.counts[t*c.n+p]
}

// ClassStats holds the per-class quality numbers derived from a confusion
// matrix.
type ClassStats struct {
	Class     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// PerClass derives precision, recall, F1 and support for every class.
func (c *Confusion) PerClass() []ClassStats {
	out := make([]ClassStats, c.n)
	for k := 0; k < c.n; k++ {
		tp := c.counts[k*c.n+k]
		support, predicted := 0, 0
		for j := 0; j < c.n; j++ {
			support += c.counts[k*c.n+j]
			predicted += c.counts[j*c.n+k]
		}
		p := Precision(tp, predicted)
		r := Recall(tp, support)
		out[k] = ClassStats{
			Class:     k,
			Precision: p,
			Recall:    r,
			F1:        F1(p, r),
			Support:   support,
		}
	}
	return out
}

// String renders the count table with true classes as rows and predicted
// classes as columns.
func (c *Confusion) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%9s", `true\pred`)
	for p := 0; p < c.n; p++ {
		fmt.Fprintf(&sb, " %6d", p)
	}
	sb.WriteByte('\n')
	for t := 0; t < c.n; t++ {
		fmt.Fprintf(&sb, "%9d", t)
		for p := 0; p < c.n; p++ {
			fmt.Fprintf(&sb, " %6d", c.counts[t*c.n+p])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Report renders per-class precision, recall, F1 and support plus a macro
// average and overall accuracy. names labels the classes in index order;
// missing names fall back to the class index.
func Report(got, want []int, names []string) string {
	n := len(names)
	for _, v := range want {
		if v+1 > n {
			n = v + 1
		}
	}
	for _, v := range got {
		if v+1 > n {
			n = v + 1
		}
	}
	conf := NewConfusion(got, want, n)
	stats := conf.PerClass()

	nameOf := func(k int) string {
		if k < len(names) && names[k] != "" {
			return names[k]
		}
		return fmt.Sprintf("class %d", k)
	}
	width := len("macro avg")
	for k := range stats {
		if w := len(nameOf(k)); w > width {
			width = w
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s %9s %9s %9s %9s\n", width, "", "precision", "recall", "f1", "support")
	var sumP, sumR, sumF float64
	total := 0
	for _, s := range stats {
		fmt.Fprintf(&sb, "%-*s %9.4f %9.4f %9.4f %9d\n",
			width, nameOf(s.Class), s.Precision, s.Recall, s.F1, s.Support)
		sumP += s.Precision
		sumR += s.Recall
		sumF += s.F1
		total += s.Support
	}
	k := float64(len(stats))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%-*s %9.4f %9.4f %9.4f %9d\n",
		width, "macro avg", sumP/k, sumR/k, sumF/k, total)
	fmt.Fprintf(&sb, "%-*s %9.4f %29d\n", width, "accuracy", Accuracy(got, want), total)
	return sb.String()
}
