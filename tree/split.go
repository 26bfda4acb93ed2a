package tree

import "math"

// MaskEntry is one row's slot in a ternary split mask.
type MaskEntry int8

const (
	// MaskLeft marks a row whose feature value is below the threshold.
	MaskLeft MaskEntry = iota
	// MaskRight marks a row whose feature value is at or above the threshold.
	MaskRight
	// MaskMissing marks a row whose feature value is missing.
	MaskMissing
)

// Mask is a per-row ternary partition of a dataset produced by evaluating a
// candidate threshold against one column.
type Mask []MaskEntry

// goesLeft resolves an entry to a binary direction, routing missing rows by
// the recorded null direction.
func (m MaskEntry) goesLeft(dir NullDirection) bool {
	switch m {
	case MaskLeft:
		return true
	case MaskRight:
		return false
	default:
		return dir == NullLeft
	}
}

// Column is a numeric feature column. Missing entries are marked with NaN;
// every other value participates in threshold enumeration and comparison.
type Column []float64

// IsMissing reports whether the value at row i is missing.
func (c Column) IsMissing(i int) bool {
	return math.IsNaN(c[i])
}

// FindSplits returns the candidate thresholds for this column: one per
// observed non-missing value. Duplicates are kept; deduplication is an
// optimization the search does not rely on.
func (c Column) FindSplits() []float64 {
	splits := make([]float64, 0, len(c))
	for _, v := range c {
		if !math.IsNaN(v) {
			splits = append(splits, v)
		}
	}
	return splits
}

// Mask produces the ternary mask for a candidate threshold: strictly smaller
// values go left, equal or greater go right, missing values are tagged as
// such.
func (c Column) Mask(threshold float64) Mask {
	mask := make(Mask, len(c))
	for i, v := range c {
		switch {
		case math.IsNaN(v):
			mask[i] = MaskMissing
		case v < threshold:
			mask[i] = MaskLeft
		default:
			mask[i] = MaskRight
		}
	}
	return mask
}

// Split partitions the column by the mask, routing missing rows according to
// dir. Both halves are freshly allocated; the receiver is left untouched.
func (c Column) Split(mask Mask, dir NullDirection) (left, right Column) {
	left = make(Column, 0, len(c))
	right = make(Column, 0, len(c))
	for i, v := range c {
		if i >= len(mask) {
			break
		}
		if mask[i].goesLeft(dir) {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	return left, right
}

// Target is the sequence of boolean labels, row-aligned with every column of
// the dataset it is trained against.
type Target []bool

// Len returns the number of labels.
func (t Target) Len() int { return len(t) }

// Split partitions the target by the mask in lock-step with the dataset,
// routing missing rows according to dir.
func (t Target) Split(mask Mask, dir NullDirection) (left, right Target) {
	left = make(Target, 0, len(t))
	right = make(Target, 0, len(t))
	for i, v := range t {
		if i >= len(mask) {
			break
		}
		if mask[i].goesLeft(dir) {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	return left, right
}
