package coca

import (
	"fmt"
	"math"
	"math/rand"
)

// SplitResult partitions a cohort into the three groups consumed by the
// training pipeline. The three slices are disjoint and together contain every
// input patient exactly once.
type SplitResult struct {
	Train []string
	Test  []string
	Val   []string
}

// Split shuffles the cohort under the given seed and slices it into
// train/test/val. The first floor(n*trainRatio) shuffled patients become the
// training group, the next floor(n*testRatio) the test group, and the
// remainder the validation group, so the ratios need not sum to exactly 1.
//
// The seed is the sole source of randomness: the generator is constructed
// per call, never shared, so the same (cohort, ratios, seed) always yields
// the same partition and concurrent callers with different seeds cannot
// interfere. Repeated experiment runs therefore cannot leak test patients
// into training.
func Split(cohort []string, trainRatio, testRatio float64, seed int64) (SplitResult, error) {
	if trainRatio < 0 || testRatio < 0 {
		return SplitResult{}, fmt.Errorf("split ratios must be nonnegative; got train=%g test=%g", trainRatio, testRatio)
	}

	if trainRatio+testRatio > 1 {
		return SplitResult{}, fmt.Errorf("train and test ratios sum to %g, leaving a negative validation share", trainRatio+testRatio)
	}

	shuffled := make([]string, len(cohort))
	copy(shuffled, cohort)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	nTrain := int(math.Floor(float64(n) * trainRatio))
	nTest := int(math.Floor(float64(n) * testRatio))

	return SplitResult{
		Train: shuffled[:nTrain],
		Test:  shuffled[nTrain : nTrain+nTest],
		Val:   shuffled[nTrain+nTest:],
	}, nil
}

// Counts reports the size of each group.
func (s SplitResult) Counts() (train, test, val int) {
	return len(s.Train), len(s.Test), len(s.Val)
}

// Assignments inverts the partition into a per-patient lookup. Group names
// are "train", "test", and "val".
func (s SplitResult) Assignments() map[string]string {
	out := make(map[string]string, len(s.Train)+len(s.Test)+len(s.Val))

	for _, id := range s.Train {
		out[id] = "train"
	}
	for _, id := range s.Test {
		out[id] = "test"
	}
	for _, id := range s.Val {
		out[id] = "val"
	}

	return out
}
