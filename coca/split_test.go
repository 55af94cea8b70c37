package coca

import (
	"sort"
	"testing"
)

var splitCohort = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

func TestSplitSizes(t *testing.T) {
	split, err := Split(splitCohort, 0.6, 0.2, 811)
	if err != nil {
		t.Fatal(err)
	}

	nTrain, nTest, nVal := split.Counts()
	if nTrain != 6 || nTest != 2 || nVal != 2 {
		t.Errorf("expected a 6/2/2 split, got %d/%d/%d", nTrain, nTest, nVal)
	}
}

func TestSplitDeterminism(t *testing.T) {
	first, err := Split(splitCohort, 0.6, 0.2, 811)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Split(splitCohort, 0.6, 0.2, 811)
	if err != nil {
		t.Fatal(err)
	}

	for group, pair := range map[string][2][]string{
		"train": {first.Train, second.Train},
		"test":  {first.Test, second.Test},
		"val":   {first.Val, second.Val},
	} {
		if len(pair[0]) != len(pair[1]) {
			t.Fatalf("%s group size differs between identical runs", group)
		}

		for i := range pair[0] {
			if pair[0][i] != pair[1][i] {
				t.Errorf("%s group differs at position %d: %s vs %s", group, i, pair[0][i], pair[1][i])
			}
		}
	}
}

func TestSplitIsAPartition(t *testing.T) {
	split, err := Split(splitCohort, 0.6, 0.2, 811)
	if err != nil {
		t.Fatal(err)
	}

	combined := make([]string, 0, len(splitCohort))
	combined = append(combined, split.Train...)
	combined = append(combined, split.Test...)
	combined = append(combined, split.Val...)

	if len(combined) != len(splitCohort) {
		t.Fatalf("partition has %d members, input had %d", len(combined), len(splitCohort))
	}

	sort.Strings(combined)
	for i, id := range splitCohort {
		if combined[i] != id {
			t.Errorf("position %d: expected %s, got %s", i, id, combined[i])
		}
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	cohort := []string{"a", "b", "c", "d", "e"}

	if _, err := Split(cohort, 0.6, 0.2, 3); err != nil {
		t.Fatal(err)
	}

	for i, id := range []string{"a", "b", "c", "d", "e"} {
		if cohort[i] != id {
			t.Fatalf("input cohort was reordered: %v", cohort)
		}
	}
}

func TestSplitRejectsInvalidRatios(t *testing.T) {
	if _, err := Split(splitCohort, -0.1, 0.2, 811); err == nil {
		t.Error("expected an error for a negative train ratio")
	}

	if _, err := Split(splitCohort, 0.6, -0.2, 811); err == nil {
		t.Error("expected an error for a negative test ratio")
	}

	if _, err := Split(splitCohort, 0.9, 0.2, 811); err == nil {
		t.Error("expected an error for ratios summing beyond 1")
	}
}

func TestSplitEmptyCohort(t *testing.T) {
	split, err := Split(nil, 0.6, 0.2, 811)
	if err != nil {
		t.Fatal(err)
	}

	if nTrain, nTest, nVal := split.Counts(); nTrain+nTest+nVal != 0 {
		t.Errorf("expected an empty partition, got %d/%d/%d", nTrain, nTest, nVal)
	}
}

func TestAssignments(t *testing.T) {
	split, err := Split(splitCohort, 0.6, 0.2, 811)
	if err != nil {
		t.Fatal(err)
	}

	assignments := split.Assignments()
	if len(assignments) != len(splitCohort) {
		t.Fatalf("expected %d assignments, got %d", len(splitCohort), len(assignments))
	}

	for _, id := range split.Val {
		if assignments[id] != "val" {
			t.Errorf("patient %s assigned to %q, expected val", id, assignments[id])
		}
	}
}
