package tree

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cunialino/know-your-trees/pkg/errors"
)

// Shape errors. Raised when computing row counts or iterating rows; they are
// propagated to the caller of Fit/Predict, never recovered silently.
var (
	// ErrEmptyDataSet is returned when a dataset has no columns.
	ErrEmptyDataSet = errors.New("dataset has no columns")
)

// IllFormedColumnError reports a column shorter than the dataset's inferred
// row count.
type IllFormedColumnError struct {
	Column string
	Row    int
}

func (e *IllFormedColumnError) Error() string {
	return fmt.Sprintf("ill-formed dataset: column %q has no value at row %d", e.Column, e.Row)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *IllFormedColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Int("row", e.Row).
		Str("type", "IllFormedColumnError")
}

// NewIllFormedColumnError creates an IllFormedColumnError with a stack trace.
func NewIllFormedColumnError(column string, row int) error {
	return errors.WithStack(&IllFormedColumnError{Column: column, Row: row})
}

// Split-search errors. ErrNoSplitRequired is recovered by the builder into a
// leaf; ScoreNotComparableError is fatal and surfaces as a Fit failure.
var (
	// ErrNoSplitRequired means no candidate produced a viable score. The
	// builder turns this into a leaf; it is not a user-visible failure.
	ErrNoSplitRequired = errors.New("split not found: split not required")
)

// ScoreNotComparableError reports two candidate splits whose scores cannot be
// ordered (a NaN score). It is never resolved by a tie-break: a NaN score
// hides a data-quality bug, so it aborts the fit.
type ScoreNotComparableError struct {
	Left  SplitInfo
	Right SplitInfo
}

func (e *ScoreNotComparableError) Error() string {
	return fmt.Sprintf("split not found: cannot compare score %v (feature %q) and %v (feature %q)",
		e.Left.Score.Score, e.Left.Feature, e.Right.Score.Score, e.Right.Feature)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ScoreNotComparableError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("left_feature", e.Left.Feature).
		Float64("left_score", e.Left.Score.Score).
		Str("right_feature", e.Right.Feature).
		Float64("right_score", e.Right.Score.Score).
		Str("type", "ScoreNotComparableError")
}

// NewScoreNotComparableError creates a ScoreNotComparableError with a stack
// trace.
func NewScoreNotComparableError(left, right SplitInfo) error {
	return errors.WithStack(&ScoreNotComparableError{Left: left, Right: right})
}

// Prediction errors. Both indicate a caller/data contract violation and abort
// the prediction rather than substituting a default.
var (
	// ErrNoPredictionInLeaf is returned when traversal reaches a leaf without
	// a prediction. The tree invariant makes this structurally impossible,
	// but it is checked, not assumed.
	ErrNoPredictionInLeaf = errors.New("leaf node has no prediction")
)

// FeatureNotFoundError reports a predicted row that lacks a feature
// referenced by a visited split.
type FeatureNotFoundError struct {
	Feature string
}

func (e *FeatureNotFoundError) Error() string {
	return fmt.Sprintf("feature %q not in dataset", e.Feature)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *FeatureNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("feature", e.Feature).
		Str("type", "FeatureNotFoundError")
}

// NewFeatureNotFoundError creates a FeatureNotFoundError with a stack trace.
func NewFeatureNotFoundError(feature string) error {
	return errors.WithStack(&FeatureNotFoundError{Feature: feature})
}
