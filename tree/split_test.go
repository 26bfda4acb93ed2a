package tree

import (
	"math"
	"testing"
)

func TestColumnFindSplits(t *testing.T) {
	tests := []struct {
		name   string
		column Column
		want   []float64
	}{
		{name: "no missing", column: Column{1, 2, 3}, want: []float64{1, 2, 3}},
		{name: "duplicates kept", column: Column{2, 2, 1}, want: []float64{2, 2, 1}},
		{name: "missing skipped", column: Column{1, math.NaN(), math.NaN()}, want: []float64{1}},
		{name: "all missing", column: Column{math.NaN()}, want: []float64{}},
		{name: "empty", column: Column{}, want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.column.FindSplits()
			if len(got) != len(tt.want) {
				t.Fatalf("FindSplits() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FindSplits()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestColumnMask(t *testing.T) {
	column := Column{1, 2, math.NaN(), 3}
	got := column.Mask(2)
	want := Mask{MaskLeft, MaskRight, MaskMissing, MaskRight}

	if len(got) != len(want) {
		t.Fatalf("Mask() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Mask()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColumnMaskEqualGoesRight(t *testing.T) {
	column := Column{2}
	if got := column.Mask(2); got[0] != MaskRight {
		t.Errorf("value equal to threshold masked %v, want MaskRight", got[0])
	}
}

func TestColumnSplit(t *testing.T) {
	tests := []struct {
		name      string
		column    Column
		mask      Mask
		direction NullDirection
		wantLeft  Column
		wantRight Column
	}{
		{
			name:      "plain partition",
			column:    Column{1, 2, 3},
			mask:      Mask{MaskLeft, MaskRight, MaskRight},
			direction: NullLeft,
			wantLeft:  Column{1},
			wantRight: Column{2, 3},
		},
		{
			name:      "missing routed left",
			column:    Column{1, math.NaN(), 3},
			mask:      Mask{MaskLeft, MaskMissing, MaskRight},
			direction: NullLeft,
			wantLeft:  Column{1, math.NaN()},
			wantRight: Column{3},
		},
		{
			name:      "missing routed right",
			column:    Column{1, math.NaN(), 3},
			mask:      Mask{MaskLeft, MaskMissing, MaskRight},
			direction: NullRight,
			wantLeft:  Column{1},
			wantRight: Column{math.NaN(), 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := tt.column.Split(tt.mask, tt.direction)
			assertColumnsEqual(t, "left", left, tt.wantLeft)
			assertColumnsEqual(t, "right", right, tt.wantRight)
			if len(left)+len(right) != len(tt.column) {
				t.Errorf("row count not preserved: %d + %d != %d", len(left), len(right), len(tt.column))
			}
		})
	}
}

func TestTargetSplit(t *testing.T) {
	target := Target{true, false, true, false}
	mask := Mask{MaskLeft, MaskRight, MaskMissing, MaskRight}

	left, right := target.Split(mask, NullLeft)
	if left.Len()+right.Len() != target.Len() {
		t.Errorf("row count not preserved: %d + %d != %d", left.Len(), right.Len(), target.Len())
	}
	wantLeft := Target{true, true}
	wantRight := Target{false, false}
	for i := range wantLeft {
		if left[i] != wantLeft[i] {
			t.Errorf("left[%d] = %v, want %v", i, left[i], wantLeft[i])
		}
	}
	for i := range wantRight {
		if right[i] != wantRight[i] {
			t.Errorf("right[%d] = %v, want %v", i, right[i], wantRight[i])
		}
	}
}

func assertColumnsEqual(t *testing.T, label string, got, want Column) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		same := got[i] == want[i] || (math.IsNaN(got[i]) && math.IsNaN(want[i]))
		if !same {
			t.Errorf("%s[%d] = %v, want %v", label, i, got[i], want[i])
		}
	}
}
