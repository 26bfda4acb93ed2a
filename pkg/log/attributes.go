// Package log defines standard attribute keys for tree operations.
//
// Using these keys consistently keeps the log stream queryable: every fit or
// predict event tags the same operation, data-shape, and split fields.
package log

// Operation context.
const (
	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict".
	OperationKey = "tree.operation"

	// ComponentKey identifies the component emitting the event.
	// Examples: "tree", "tree.search".
	ComponentKey = "component"

	// ScoringKey names the scoring function in use ("gini", "logit").
	ScoringKey = "tree.scoring"

	// MaxDepthKey records the configured maximum depth for a fit.
	MaxDepthKey = "tree.max_depth"

	// DepthKey records the remaining depth at the current recursion level.
	DepthKey = "tree.depth"
)

// Data shape.
const (
	// SamplesKey indicates the number of rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns.
	FeaturesKey = "data.features"
)

// Split context. These describe the winning candidate of a split search.
const (
	// SplitFeatureKey is the name of the feature chosen by a split search.
	SplitFeatureKey = "split.feature"

	// SplitThresholdKey is the threshold chosen by a split search.
	SplitThresholdKey = "split.threshold"

	// SplitScoreKey is the score of the chosen split (lower is better).
	SplitScoreKey = "split.score"

	// NullDirectionKey records where missing values route at the chosen split.
	NullDirectionKey = "split.null_direction"

	// CandidatesKey is the number of candidate splits evaluated by a search.
	CandidatesKey = "split.candidates"
)

// Prediction context.
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
)
