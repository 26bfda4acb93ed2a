// Package tree builds binary decision trees from columnar data and a boolean
// target, and scores new rows against them. One call to Fit produces one
// tree; gradient-boosting or forest layers that need many trees call it
// repeatedly with updated scoring functions.
package tree

import (
	"github.com/cunialino/know-your-trees/pkg/errors"
	"github.com/cunialino/know-your-trees/pkg/log"
)

// CollapsePolicy controls the post-hoc treatment of internal children whose
// own split score differs from their parent's.
type CollapsePolicy int

const (
	// CollapseOnDivergence replaces an internal child whose split score
	// differs from the parent's with a leaf computed over the child's target
	// partition. This matches the behavior the documented fit scenarios
	// exercise and is the default.
	CollapseOnDivergence CollapsePolicy = iota
	// KeepDivergentChildren keeps every built child as-is.
	KeepDivergentChildren
)

// TreeConfig carries the tree-construction hyperparameters. The zero value
// is valid: MaxDepth 0 yields a single leaf over the full target.
type TreeConfig struct {
	// MaxDepth is the maximum number of split levels. 0 means no splits.
	MaxDepth int
	// Collapse selects the post-hoc collapse policy.
	Collapse CollapsePolicy
}

// Tree is a node of a fitted binary decision tree. An internal node owns a
// SplitInfo and both children; a leaf owns only a prediction. Exactly one of
// the two forms is ever populated. A Tree is immutable after construction
// and owned exclusively by its parent.
type Tree struct {
	SplitInfo  *SplitInfo
	Left       *Tree
	Right      *Tree
	Prediction *float64
}

// IsLeaf reports whether the node is a leaf.
func (t *Tree) IsLeaf() bool {
	return t.SplitInfo == nil && t.Left == nil && t.Right == nil
}

// Equal reports structural equality: same splits, scores, null directions,
// and predictions at every node.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	if (t.SplitInfo == nil) != (o.SplitInfo == nil) ||
		(t.Prediction == nil) != (o.Prediction == nil) {
		return false
	}
	if t.SplitInfo != nil && *t.SplitInfo != *o.SplitInfo {
		return false
	}
	if t.Prediction != nil && *t.Prediction != *o.Prediction {
		return false
	}
	return t.Left.Equal(o.Left) && t.Right.Equal(o.Right)
}

// Fit builds a decision tree over the dataset and its row-aligned boolean
// target.
//
// Degenerate search outcomes (no viable candidate) become leaves; a
// ScoreNotComparableError aborts the fit. Either a complete, structurally
// valid tree is returned, or none is.
func Fit(ds DataSet, target Target, config TreeConfig, scoring ScoringFunction) (*Tree, error) {
	numRows, err := ds.NumRows()
	if err != nil {
		return nil, err
	}
	if numRows != target.Len() {
		return nil, errors.NewDimensionError("fit", numRows, target.Len(), 0)
	}

	logger := log.GetLoggerWithName("tree").With(
		log.OperationKey, log.OperationFit,
		log.ScoringKey, scoring.Name(),
	)
	logger.Info("fit started",
		log.SamplesKey, numRows,
		log.MaxDepthKey, config.MaxDepth,
	)

	root, err := buildTree(ds, target, config.MaxDepth, scoring, config.Collapse)
	if err != nil {
		logger.Error("fit failed", err)
		return nil, err
	}
	logger.Info("fit finished")
	return root, nil
}

func buildLeaf(target Target, scoring ScoringFunction) *Tree {
	pred := scoring.Pred(target)
	return &Tree{Prediction: &pred}
}

func buildTree(ds DataSet, target Target, depth int, scoring ScoringFunction, policy CollapsePolicy) (*Tree, error) {
	if depth == 0 {
		return buildLeaf(target, scoring), nil
	}

	splitInfo, err := ds.FindBestSplit(target, scoring)
	if err != nil {
		if errors.Is(err, ErrNoSplitRequired) {
			return buildLeaf(target, scoring), nil
		}
		return nil, err
	}

	mask, err := ds.Mask(splitInfo.Feature, splitInfo.Threshold)
	if err != nil {
		return nil, err
	}
	leftData, rightData := ds.Split(mask, splitInfo.Score.NullDirection)
	leftTarget, rightTarget := target.Split(mask, splitInfo.Score.NullDirection)

	// A perfect split cannot be improved on: both children become leaves
	// immediately, regardless of the configured depth.
	childDepth := depth - 1
	if splitInfo.Score.Score == 0 {
		childDepth = 0
	}

	left, err := buildTree(leftData, leftTarget, childDepth, scoring, policy)
	if err != nil {
		return nil, err
	}
	right, err := buildTree(rightData, rightTarget, childDepth, scoring, policy)
	if err != nil {
		return nil, err
	}

	if policy == CollapseOnDivergence {
		left = collapseDivergent(&splitInfo, left, leftTarget, scoring)
		right = collapseDivergent(&splitInfo, right, rightTarget, scoring)
	}

	return &Tree{
		SplitInfo: &splitInfo,
		Left:      left,
		Right:     right,
	}, nil
}

// collapseDivergent discards an internal child whose own split score differs
// from the parent's and replaces it with a fresh leaf over the child's
// target partition. Leaves, and children whose score matches, are kept.
func collapseDivergent(parent *SplitInfo, child *Tree, childTarget Target, scoring ScoringFunction) *Tree {
	if child.Prediction != nil {
		return child
	}
	if child.SplitInfo != nil {
		if child.SplitInfo.Score.Score != parent.Score.Score {
			return buildLeaf(childTarget, scoring)
		}
		return child
	}
	return buildLeaf(childTarget, scoring)
}
