// Package metrics provides evaluation metrics for binary classification over
// boolean labels and numeric predictions.
package metrics

import (
	"math"

	"github.com/cunialino/know-your-trees/pkg/errors"
)

// logLossEps clamps probabilities away from 0 and 1 so the loss stays finite.
const logLossEps = 1e-15

// Accuracy computes the fraction of rows whose thresholded prediction matches
// the label. A prediction is counted as true when it is >= threshold.
func Accuracy(yTrue []bool, yPred []float64, threshold float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty input")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if (yPred[i] >= threshold) == yTrue[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// LogLoss computes the mean negative log likelihood of probability
// predictions. Probabilities are clamped to [eps, 1-eps].
func LogLoss(yTrue []bool, yProb []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("LogLoss", "empty input")
	}
	if len(yProb) != n {
		return 0, errors.NewDimensionError("LogLoss", n, len(yProb), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		p := math.Min(math.Max(yProb[i], logLossEps), 1-logLossEps)
		if yTrue[i] {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(n), nil
}

// LogLossFromLogits is LogLoss over raw scores, mapped through the logistic
// function first. Tree leaves trained with the gradient scoring emit scores
// on this scale.
func LogLossFromLogits(yTrue []bool, yScore []float64) (float64, error) {
	n := len(yTrue)
	if len(yScore) != n {
		return 0, errors.NewDimensionError("LogLossFromLogits", n, len(yScore), 0)
	}
	probs := make([]float64, n)
	for i, s := range yScore {
		probs[i] = 1 / (1 + math.Exp(-s))
	}
	return LogLoss(yTrue, probs)
}

// BrierScore computes the mean squared difference between probability
// predictions and the 0/1 labels.
func BrierScore(yTrue []bool, yProb []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("BrierScore", "empty input")
	}
	if len(yProb) != n {
		return 0, errors.NewDimensionError("BrierScore", n, len(yProb), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		label := 0.0
		if yTrue[i] {
			label = 1.0
		}
		diff := yProb[i] - label
		sum += diff * diff
	}
	return sum / float64(n), nil
}
