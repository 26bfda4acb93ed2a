package tree

import (
	"sort"

	"github.com/cunialino/know-your-trees/core/parallel"
	"github.com/cunialino/know-your-trees/pkg/errors"
)

// Row is one row of a dataset as seen by the predictor: feature name to
// value, with NaN marking a missing value.
type Row map[string]float64

// DataSet is the columnar-table contract the builder and predictor work
// against: uniquely named numeric columns of a consistent row count, with
// optional missing entries. Implementations outside this package adapt their
// native format (dense matrices, Arrow batches) to this interface.
type DataSet interface {
	// NumRows returns the number of rows, or ErrEmptyDataSet when the
	// dataset has no columns.
	NumRows() (int, error)

	// FindBestSplit searches every feature and every candidate threshold for
	// the viable split with the minimal score. It returns ErrNoSplitRequired
	// when no candidate is viable and a ScoreNotComparableError when two
	// scores cannot be ordered.
	FindBestSplit(target Target, scoring ScoringFunction) (SplitInfo, error)

	// Mask builds the ternary mask for one feature and threshold.
	Mask(feature string, threshold float64) (Mask, error)

	// Split partitions every column by the mask, routing missing rows by
	// dir. Both halves are new, independently owned datasets.
	Split(mask Mask, dir NullDirection) (DataSet, DataSet)

	// Rows returns the row-major view used by the predictor.
	Rows() ([]Row, error)
}

// MapDataSet is the canonical DataSet: a mapping from feature name to column.
type MapDataSet map[string]Column

var _ DataSet = MapDataSet{}

// seqSearchThreshold is the candidate count below which the split search runs
// sequentially; tiny searches are not worth the goroutine overhead.
const seqSearchThreshold = 64

// FeatureNames returns the feature names in sorted order. Go map iteration
// order is randomized; sorting is what makes the search deterministic and
// gives the documented first-encountered tie-break.
func (ds MapDataSet) FeatureNames() []string {
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumRows implements DataSet. The row count is the longest column; shorter
// columns are reported as ill-formed during row iteration.
func (ds MapDataSet) NumRows() (int, error) {
	if len(ds) == 0 {
		return 0, errors.WithStack(ErrEmptyDataSet)
	}
	max := 0
	for _, col := range ds {
		if len(col) > max {
			max = len(col)
		}
	}
	return max, nil
}

// splitCandidate is one (feature, threshold) pair of the search space.
type splitCandidate struct {
	feature   string
	threshold float64
}

// FindBestSplit implements DataSet.
//
// Candidates are enumerated in sorted feature order and evaluated in
// parallel, each one independently against read-only views of the column and
// target. Results land in per-candidate slots and the reduction runs
// afterwards, sequentially and in enumeration order, so repeated fits on
// identical inputs choose identical splits and ties always favor the first
// candidate encountered.
func (ds MapDataSet) FindBestSplit(target Target, scoring ScoringFunction) (SplitInfo, error) {
	var candidates []splitCandidate
	for _, name := range ds.FeatureNames() {
		for _, threshold := range ds[name].FindSplits() {
			candidates = append(candidates, splitCandidate{feature: name, threshold: threshold})
		}
	}
	if len(candidates) == 0 {
		return SplitInfo{}, errors.WithStack(ErrNoSplitRequired)
	}

	results := make([]*SplitInfo, len(candidates))
	parallel.ParallelizeWithThreshold(len(candidates), seqSearchThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			cand := candidates[i]
			mask := ds[cand.feature].Mask(cand.threshold)
			score, ok := scoring.SplitScore(target, mask)
			if !ok {
				continue
			}
			results[i] = &SplitInfo{Feature: cand.feature, Threshold: cand.threshold, Score: score}
		}
	})

	var best *SplitInfo
	for _, candidate := range results {
		if candidate == nil {
			continue
		}
		if best == nil {
			best = candidate
			continue
		}
		better, err := betterSplit(best, candidate)
		if err != nil {
			return SplitInfo{}, err
		}
		best = better
	}
	if best == nil {
		return SplitInfo{}, errors.WithStack(ErrNoSplitRequired)
	}
	return *best, nil
}

// betterSplit picks the split with the lower score, keeping the accumulator
// on ties. Incomparable scores (NaN) are an error, never a tie-break: the
// operator is the reduction step of the parallel search and must stay
// deterministic.
func betterSplit(acc, candidate *SplitInfo) (*SplitInfo, error) {
	switch {
	case acc.Score.Score <= candidate.Score.Score:
		return acc, nil
	case candidate.Score.Score < acc.Score.Score:
		return candidate, nil
	default:
		return nil, NewScoreNotComparableError(*acc, *candidate)
	}
}

// Mask implements DataSet.
func (ds MapDataSet) Mask(feature string, threshold float64) (Mask, error) {
	col, ok := ds[feature]
	if !ok {
		return nil, NewFeatureNotFoundError(feature)
	}
	return col.Mask(threshold), nil
}

// Split implements DataSet. Every column is partitioned by the same mask, so
// the two halves stay row-aligned with a target partitioned in lock-step.
func (ds MapDataSet) Split(mask Mask, dir NullDirection) (DataSet, DataSet) {
	left := make(MapDataSet, len(ds))
	right := make(MapDataSet, len(ds))
	for name, col := range ds {
		l, r := col.Split(mask, dir)
		left[name] = l
		right[name] = r
	}
	return left, right
}

// Rows implements DataSet. A column shorter than the dataset's row count is
// a data-shape error, not a panic.
func (ds MapDataSet) Rows() ([]Row, error) {
	numRows, err := ds.NumRows()
	if err != nil {
		return nil, err
	}
	names := ds.FeatureNames()
	rows := make([]Row, numRows)
	for i := 0; i < numRows; i++ {
		row := make(Row, len(names))
		for _, name := range names {
			col := ds[name]
			if i >= len(col) {
				return nil, NewIllFormedColumnError(name, i)
			}
			row[name] = col[i]
		}
		rows[i] = row
	}
	return rows, nil
}
