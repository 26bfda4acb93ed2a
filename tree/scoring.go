package tree

import (
	"math"

	"github.com/cunialino/know-your-trees/pkg/errors"
)

// NullDirection records the side of a split that rows with a missing feature
// value are routed to. The direction is chosen once, at training time, and
// stored with the split.
type NullDirection int

const (
	// NullLeft routes missing values to the left child.
	NullLeft NullDirection = iota
	// NullRight routes missing values to the right child.
	NullRight
)

// String returns the string representation of the direction.
func (d NullDirection) String() string {
	switch d {
	case NullLeft:
		return "Left"
	case NullRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// SplitScore is the numeric quality of a candidate split together with the
// missing-value direction that achieved it. Lower scores are better for every
// scoring function; gain-style scores are stored negated to preserve this.
type SplitScore struct {
	Score         float64
	NullDirection NullDirection
}

// SplitInfo describes a chosen split: the feature, the threshold rows are
// compared against (strictly-less goes left), and the score achieved.
type SplitInfo struct {
	Feature   string
	Threshold float64
	Score     SplitScore
}

// ScoringFunction turns a candidate partition of the target into a comparable
// score and computes leaf predictions. The set of implementations is closed:
// Gini (impurity) and Logit (gradient/Hessian).
type ScoringFunction interface {
	// SplitScore evaluates a candidate split described by the ternary mask.
	// It returns ok=false when the candidate is not viable (degenerate
	// partitions); callers skip such candidates rather than failing.
	SplitScore(target Target, mask Mask) (SplitScore, bool)

	// Pred computes the leaf prediction for the given target partition.
	Pred(target Target) float64

	// Name returns the name of the scoring function.
	Name() string
}

// labelCounts tracks per-class label counts for the boolean target.
type labelCounts struct {
	trues  float64
	falses float64
}

func (c labelCounts) total() float64 { return c.trues + c.falses }

func (c labelCounts) add(o labelCounts) labelCounts {
	return labelCounts{trues: c.trues + o.trues, falses: c.falses + o.falses}
}

// Gini scores candidate splits by weighted Gini impurity of the two halves.
type Gini struct{}

// NewGini creates a Gini scoring function.
func NewGini() *Gini {
	return &Gini{}
}

func gini(counts labelCounts) float64 {
	total := counts.total()
	if total == 0 {
		return 0
	}
	pt := counts.trues / total
	pf := counts.falses / total
	return 1 - (pt*pt + pf*pf)
}

// SplitScore implements ScoringFunction. It evaluates both missing-value
// assignments (all-missing-to-left vs all-missing-to-right), picks the lower
// weighted impurity, and tags the result with the winning direction. A
// candidate with every row in a single mask bucket is not viable.
func (g *Gini) SplitScore(target Target, mask Mask) (SplitScore, bool) {
	var left, right, missing labelCounts

	n := len(target)
	if len(mask) < n {
		n = len(mask)
	}
	for i := 0; i < n; i++ {
		bucket := &right
		switch mask[i] {
		case MaskLeft:
			bucket = &left
		case MaskMissing:
			bucket = &missing
		}
		if target[i] {
			bucket.trues++
		} else {
			bucket.falses++
		}
	}

	total := left.total() + right.total() + missing.total()
	if total == left.total() || total == right.total() || total == missing.total() {
		return SplitScore{}, false
	}

	withNullsLeft := (left.total()+missing.total())/total*gini(left.add(missing)) +
		right.total()/total*gini(right)
	withNullsRight := left.total()/total*gini(left) +
		(right.total()+missing.total())/total*gini(right.add(missing))

	// Ties prefer Left. A NaN impurity falls through to the Right branch and
	// surfaces as ScoreNotComparable during the reduction.
	if withNullsLeft <= withNullsRight {
		return SplitScore{Score: withNullsLeft, NullDirection: NullLeft}, true
	}
	return SplitScore{Score: withNullsRight, NullDirection: NullRight}, true
}

// Pred implements ScoringFunction: the fraction of true labels.
func (g *Gini) Pred(target Target) float64 {
	trues := 0.0
	for _, v := range target {
		if v {
			trues++
		}
	}
	return trues / float64(len(target))
}

// Name implements ScoringFunction.
func (g *Gini) Name() string { return "gini" }

// Logit scores candidate splits by a one-step Newton gain computed from
// logistic-loss gradients and Hessians against a fixed working prediction.
// The working prediction is set at construction and never mutated.
type Logit struct {
	pred float64
}

// NewLogit creates a Logit scoring function with the given working
// prediction. The prediction must lie strictly inside (0, 1).
func NewLogit(pred float64) (*Logit, error) {
	if !(pred > 0 && pred < 1) {
		return nil, errors.NewValidationError("pred", "working prediction must be in (0, 1)", pred)
	}
	return &Logit{pred: pred}, nil
}

func (l *Logit) gradHess(target bool) (grad, hess float64) {
	targetVal := 0.0
	if target {
		targetVal = 1.0
	}
	return l.pred - targetVal, l.pred * (1.0 - l.pred)
}

// SplitScore implements ScoringFunction. The gain of an assignment is
// (Σg_left)²/Σh_left + (Σg_right)²/Σh_right with the missing rows' gradients
// and Hessians folded into the side under evaluation. The larger gain wins
// and is stored negated so that lower score is uniformly better; ties prefer
// missing-to-Left. If the preferred assignment is not finite and the
// alternative is not either, the candidate is not viable.
func (l *Logit) SplitScore(target Target, mask Mask) (SplitScore, bool) {
	var lg, lh, rg, rh, ng, nh float64

	n := len(target)
	if len(mask) < n {
		n = len(mask)
	}
	for i := 0; i < n; i++ {
		grad, hess := l.gradHess(target[i])
		switch mask[i] {
		case MaskLeft:
			lg += grad
			lh += hess
		case MaskRight:
			rg += grad
			rh += hess
		default:
			ng += grad
			nh += hess
		}
	}

	scoreOnLeft := (lg+ng)*(lg+ng)/(lh+nh) + rg*rg/rh
	scoreOnRight := (rg+ng)*(rg+ng)/(rh+nh) + lg*lg/lh

	if scoreOnLeft >= scoreOnRight {
		return SplitScore{Score: -scoreOnLeft, NullDirection: NullLeft}, true
	}
	if !math.IsInf(scoreOnRight, 0) && !math.IsNaN(scoreOnRight) {
		return SplitScore{Score: -scoreOnRight, NullDirection: NullRight}, true
	}
	return SplitScore{}, false
}

// Pred implements ScoringFunction: the one-step Newton update −Σg/Σh.
func (l *Logit) Pred(target Target) float64 {
	var g, h float64
	for _, v := range target {
		grad, hess := l.gradHess(v)
		g += grad
		h += hess
	}
	return -g / h
}

// Name implements ScoringFunction.
func (l *Logit) Name() string { return "logit" }

// CreateScoringFunction creates a scoring function by name. workingPred is
// only used by the gradient/Hessian strategies.
func CreateScoringFunction(name string, workingPred float64) (ScoringFunction, error) {
	switch name {
	case "gini":
		return NewGini(), nil
	case "logit", "logistic", "binary":
		return NewLogit(workingPred)
	default:
		return nil, errors.Newf("unknown scoring function: %s", name)
	}
}
