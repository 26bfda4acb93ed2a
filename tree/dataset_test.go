package tree

import (
	"math"
	"testing"

	"github.com/cunialino/know-your-trees/pkg/errors"
)

func TestFindBestSplitLogit(t *testing.T) {
	ds := MapDataSet{"f1": Column{1, 2, 3}}
	target := Target{true, true, false}
	scoring, err := NewLogit(0.5)
	if err != nil {
		t.Fatalf("NewLogit error: %v", err)
	}

	info, err := ds.FindBestSplit(target, scoring)
	if err != nil {
		t.Fatalf("FindBestSplit() error: %v", err)
	}
	if info.Feature != "f1" {
		t.Errorf("feature = %q, want f1", info.Feature)
	}
	if info.Threshold != 3 {
		t.Errorf("threshold = %v, want 3", info.Threshold)
	}
	if info.Score.Score != -3 {
		t.Errorf("score = %v, want -3", info.Score.Score)
	}
}

func TestFindBestSplitGini(t *testing.T) {
	ds := MapDataSet{"F1": Column{1, 2, 3}}
	target := Target{true, false, false}

	info, err := ds.FindBestSplit(target, NewGini())
	if err != nil {
		t.Fatalf("FindBestSplit() error: %v", err)
	}
	if info.Feature != "F1" || info.Threshold != 2 {
		t.Errorf("split = (%q, %v), want (F1, 2)", info.Feature, info.Threshold)
	}
	if info.Score.Score != 0 {
		t.Errorf("score = %v, want 0", info.Score.Score)
	}
	if info.Score.NullDirection != NullLeft {
		t.Errorf("null direction = %v, want Left", info.Score.NullDirection)
	}
}

func TestFindBestSplitNoSplitRequired(t *testing.T) {
	tests := []struct {
		name   string
		ds     MapDataSet
		target Target
	}{
		{
			// Every candidate puts all rows on one side.
			name:   "constant column",
			ds:     MapDataSet{"F1": Column{5, 5, 5}},
			target: Target{true, false, true},
		},
		{
			name:   "all values missing",
			ds:     MapDataSet{"F1": Column{math.NaN(), math.NaN()}},
			target: Target{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ds.FindBestSplit(tt.target, NewGini())
			if !errors.Is(err, ErrNoSplitRequired) {
				t.Errorf("FindBestSplit() error = %v, want ErrNoSplitRequired", err)
			}
		})
	}
}

func TestFindBestSplitTieBreakIsFirstFeature(t *testing.T) {
	// Two identical columns produce identical best scores; the sorted
	// feature order makes "A" the first candidate encountered, so it wins.
	ds := MapDataSet{
		"B": Column{1, 2, 3},
		"A": Column{1, 2, 3},
	}
	target := Target{true, false, false}

	for i := 0; i < 10; i++ {
		info, err := ds.FindBestSplit(target, NewGini())
		if err != nil {
			t.Fatalf("FindBestSplit() error: %v", err)
		}
		if info.Feature != "A" {
			t.Fatalf("tie broke to %q on run %d, want first feature A", info.Feature, i)
		}
	}
}

// nanScoring returns a NaN score for every candidate. Used to drive the
// reduction into the incomparable branch.
type nanScoring struct{}

func (nanScoring) SplitScore(Target, Mask) (SplitScore, bool) {
	return SplitScore{Score: math.NaN()}, true
}
func (nanScoring) Pred(Target) float64 { return 0 }
func (nanScoring) Name() string        { return "nan" }

func TestFindBestSplitScoreNotComparable(t *testing.T) {
	ds := MapDataSet{"F1": Column{1, 2}}
	target := Target{true, false}

	_, err := ds.FindBestSplit(target, nanScoring{})
	var notComparable *ScoreNotComparableError
	if !errors.As(err, &notComparable) {
		t.Fatalf("FindBestSplit() error = %v, want ScoreNotComparableError", err)
	}
}

func TestFindBestSplitManyCandidatesParallel(t *testing.T) {
	// Enough candidates to cross the sequential threshold. The separable
	// point sits at row 600; every fit must find it regardless of how the
	// candidate range is chunked across workers.
	const rows = 1200
	col := make(Column, rows)
	target := make(Target, rows)
	for i := 0; i < rows; i++ {
		col[i] = float64(i)
		target[i] = i < 600
	}
	ds := MapDataSet{"F1": col}

	info, err := ds.FindBestSplit(target, NewGini())
	if err != nil {
		t.Fatalf("FindBestSplit() error: %v", err)
	}
	if info.Threshold != 600 {
		t.Errorf("threshold = %v, want 600", info.Threshold)
	}
	if info.Score.Score != 0 {
		t.Errorf("score = %v, want 0", info.Score.Score)
	}
}

func TestNumRows(t *testing.T) {
	ds := MapDataSet{"F1": Column{1, 2, 3}, "F2": Column{4, 5, 6}}
	n, err := ds.NumRows()
	if err != nil {
		t.Fatalf("NumRows() error: %v", err)
	}
	if n != 3 {
		t.Errorf("NumRows() = %d, want 3", n)
	}
}

func TestNumRowsEmptyDataSet(t *testing.T) {
	_, err := MapDataSet{}.NumRows()
	if !errors.Is(err, ErrEmptyDataSet) {
		t.Errorf("NumRows() error = %v, want ErrEmptyDataSet", err)
	}
}

func TestSplitPreservesRowCounts(t *testing.T) {
	ds := MapDataSet{
		"F1": Column{1, 2, math.NaN(), 4},
		"F2": Column{5, 6, 7, 8},
	}
	mask, err := ds.Mask("F1", 3)
	if err != nil {
		t.Fatalf("Mask() error: %v", err)
	}

	left, right := ds.Split(mask, NullRight)
	leftRows, err := left.NumRows()
	if err != nil {
		t.Fatalf("left.NumRows() error: %v", err)
	}
	rightRows, err := right.NumRows()
	if err != nil {
		t.Fatalf("right.NumRows() error: %v", err)
	}
	if leftRows+rightRows != 4 {
		t.Errorf("row counts = %d + %d, want 4 total", leftRows, rightRows)
	}
	if leftRows != 2 || rightRows != 2 {
		t.Errorf("partition = (%d, %d), want (2, 2) with missing routed right", leftRows, rightRows)
	}
}

func TestMaskUnknownFeature(t *testing.T) {
	ds := MapDataSet{"F1": Column{1}}
	_, err := ds.Mask("F9", 1)
	var notFound *FeatureNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Mask() error = %v, want FeatureNotFoundError", err)
	}
}

func TestRows(t *testing.T) {
	ds := MapDataSet{
		"F1": Column{1, math.NaN()},
		"F2": Column{3, 4},
	}
	rows, err := ds.Rows()
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Rows() returned %d rows, want 2", len(rows))
	}
	if rows[0]["F1"] != 1 || rows[0]["F2"] != 3 {
		t.Errorf("row 0 = %v, want F1=1 F2=3", rows[0])
	}
	if !math.IsNaN(rows[1]["F1"]) {
		t.Errorf("row 1 F1 = %v, want NaN (missing)", rows[1]["F1"])
	}
}

func TestRowsIllFormedColumn(t *testing.T) {
	ds := MapDataSet{
		"F1": Column{1, 2, 3},
		"F2": Column{4},
	}
	_, err := ds.Rows()
	var illFormed *IllFormedColumnError
	if !errors.As(err, &illFormed) {
		t.Fatalf("Rows() error = %v, want IllFormedColumnError", err)
	}
	if illFormed.Column != "F2" {
		t.Errorf("ill-formed column = %q, want F2", illFormed.Column)
	}
}
