package dataset

import (
	"math"
	"math/rand"
	"sort"
)

// Split partitions records into train and test sets by a seeded random
// shuffle-and-cut. The same seed, fraction and input order always produce the
// same partition. Not stratified: class balance across the halves is whatever
// the shuffle yields.
func Split(records []Record, testFraction float64, seed int64) (train, test []Record, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, &ConfigError{Option: "test fraction", Reason: "must be in (0, 1)"}
	}

	n := len(records)
	nTest := int(math.Round(float64(n) * testFraction))

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	testIdx := append([]int(nil), perm[:nTest]...)
	trainIdx := append([]int(nil), perm[nTest:]...)

	// Restore original row order within each half so runs are comparable.
	sort.Ints(testIdx)
	sort.Ints(trainIdx)

	train = make([]Record, 0, len(trainIdx))
	for _, i := range trainIdx {
		train = append(train, records[i])
	}
	test = make([]Record, 0, len(testIdx))
	for _, i := range testIdx {
		test = append(test, records[i])
	}

	return train, test, nil
}
