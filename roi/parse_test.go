package roi

import "testing"

func TestStringToIntTuple(t *testing.T) {
	got, err := StringToIntTuple("(10012.4, 20032.9)")
	if err != nil {
		t.Fatal(err)
	}

	// Truncation, not rounding: 20032.9 must become 20032.
	if len(got) != 2 || got[0] != 10012 || got[1] != 20032 {
		t.Errorf("expected [10012 20032], got %v", got)
	}
}

func TestStringToIntTupleTruncatesTowardZero(t *testing.T) {
	got, err := StringToIntTuple("(-3.7, 3.7)")
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != -3 || got[1] != 3 {
		t.Errorf("expected [-3 3], got %v", got)
	}
}

func TestStringToIntTupleLeadingWhitespace(t *testing.T) {
	got, err := StringToIntTuple("( 10012.4000, 20032.9000)")
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != 10012 || got[1] != 20032 {
		t.Errorf("expected [10012 20032], got %v", got)
	}
}

func TestStringToIntTupleRejectsNonNumericSegments(t *testing.T) {
	for _, input := range []string{"", "()", "(1.5, abc)", "(1.5,, 2.5)"} {
		if _, err := StringToIntTuple(input); err == nil {
			t.Errorf("expected an error for %q", input)
		}
	}
}
