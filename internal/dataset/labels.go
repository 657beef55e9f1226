package dataset

import "sort"

// LabelEncoder maps a fixed set of string labels to contiguous integer codes.
// Codes are assigned in sorted lexicographic order of the distinct labels, so
// repeated fits over the same label set always reproduce the same mapping.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
}

// FitLabels builds an encoder from the labels observed in a dataset
func FitLabels(labels []string) *LabelEncoder {
	seen := make(map[string]struct{}, len(labels))
	var classes []string
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}

	return &LabelEncoder{classes: classes, codes: codes}
}

// Classes returns the fitted label names in code order
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Encode maps a label to its integer code
func (e *LabelEncoder) Encode(label string) (int, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, &UnknownLabelError{Label: label}
	}
	return code, nil
}

// EncodeAll maps a slice of labels to their integer codes
func (e *LabelEncoder) EncodeAll(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		code, err := e.Encode(l)
		if err != nil {
			return nil, err
		}
		out[i] = code
	}
	return out, nil
}

// Decode maps an integer code back to its label
func (e *LabelEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", &UnknownLabelError{Code: code}
	}
	return e.classes[code], nil
}
