// Package evaluation computes accuracy and a per-class
// precision/recall/F1/support report for classifier predictions.
package evaluation

import (
	"fmt"
	"strings"
)

// ClassMetrics holds the per-class evaluation figures. Any metric whose
// denominator is zero reports 0 rather than failing.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is the full evaluation result over a test partition
type Report struct {
	Accuracy    float64
	Labels      []string
	PerClass    []ClassMetrics
	MacroAvg    ClassMetrics
	WeightedAvg ClassMetrics
	Total       int
}

// Evaluate compares predictions against ground truth. labels gives the name
// for each class code; classes absent from yTrue simply report zero metrics.
func Evaluate(yTrue, yPred []int, labels []string) *Report {
	n := len(yTrue)
	k := len(labels)

	tp := make([]int, k)
	fp := make([]int, k)
	fn := make([]int, k)

	correct := 0
	for i := 0; i < n; i++ {
		t, p := yTrue[i], yPred[i]
		if t == p {
			correct++
			tp[t]++
			continue
		}
		if p >= 0 && p < k {
			fp[p]++
		}
		if t >= 0 && t < k {
			fn[t]++
		}
	}

	r := &Report{
		Labels:   append([]string(nil), labels...),
		PerClass: make([]ClassMetrics, k),
		Total:    n,
	}
	if n > 0 {
		r.Accuracy = float64(correct) / float64(n)
	}

	for c := 0; c < k; c++ {
		m := ClassMetrics{Support: tp[c] + fn[c]}
		m.Precision = safeDiv(float64(tp[c]), float64(tp[c]+fp[c]))
		m.Recall = safeDiv(float64(tp[c]), float64(tp[c]+fn[c]))
		m.F1 = safeDiv(2*m.Precision*m.Recall, m.Precision+m.Recall)
		r.PerClass[c] = m

		r.MacroAvg.Precision += m.Precision
		r.MacroAvg.Recall += m.Recall
		r.MacroAvg.F1 += m.F1
		r.WeightedAvg.Precision += m.Precision * float64(m.Support)
		r.WeightedAvg.Recall += m.Recall * float64(m.Support)
		r.WeightedAvg.F1 += m.F1 * float64(m.Support)
	}

	if k > 0 {
		r.MacroAvg.Precision /= float64(k)
		r.MacroAvg.Recall /= float64(k)
		r.MacroAvg.F1 /= float64(k)
	}
	r.MacroAvg.Support = n
	if n > 0 {
		r.WeightedAvg.Precision /= float64(n)
		r.WeightedAvg.Recall /= float64(n)
		r.WeightedAvg.F1 /= float64(n)
	}
	r.WeightedAvg.Support = n

	return r
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// String renders the report as a classification table with macro and
// weighted averages, in the familiar scikit-learn layout.
func (r *Report) String() string {
	width := len("weighted avg")
	for _, l := range r.Labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s  precision    recall  f1-score   support\n\n", width, "")
	for c, l := range r.Labels {
		m := r.PerClass[c]
		fmt.Fprintf(&b, "%*s  %9.2f  %8.2f  %8.2f  %8d\n", width, l, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\n%*s  %9s  %8s  %8.2f  %8d\n", width, "accuracy", "", "", r.Accuracy, r.Total)
	fmt.Fprintf(&b, "%*s  %9.2f  %8.2f  %8.2f  %8d\n", width, "macro avg",
		r.MacroAvg.Precision, r.MacroAvg.Recall, r.MacroAvg.F1, r.MacroAvg.Support)
	fmt.Fprintf(&b, "%*s  %9.2f  %8.2f  %8.2f  %8d\n", width, "weighted avg",
		r.WeightedAvg.Precision, r.WeightedAvg.Recall, r.WeightedAvg.F1, r.WeightedAvg.Support)
	return b.String()
}
