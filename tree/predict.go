package tree

import (
	"math"

	"github.com/cunialino/know-your-trees/pkg/errors"
	"github.com/cunialino/know-your-trees/pkg/log"
)

// Predict traverses the tree for every row of the dataset and returns one
// prediction per row.
//
// At an internal node the row's value for the split feature decides the
// direction: strictly smaller than the threshold goes left, otherwise right;
// a missing value follows the null direction recorded when the split was
// chosen. A row that lacks a feature referenced by a visited split aborts the
// prediction with a FeatureNotFoundError.
func (t *Tree) Predict(ds DataSet) ([]float64, error) {
	rows, err := ds.Rows()
	if err != nil {
		return nil, err
	}

	preds := make([]float64, len(rows))
	for i, row := range rows {
		pred, err := t.predictRow(row)
		if err != nil {
			return nil, err
		}
		preds[i] = pred
	}

	log.GetLoggerWithName("tree").Debug("predict finished",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(preds),
	)
	return preds, nil
}

func (t *Tree) predictRow(row Row) (float64, error) {
	node := t
	for node.SplitInfo != nil && node.Left != nil && node.Right != nil {
		value, ok := row[node.SplitInfo.Feature]
		if !ok {
			return 0, NewFeatureNotFoundError(node.SplitInfo.Feature)
		}
		switch {
		case math.IsNaN(value):
			if node.SplitInfo.Score.NullDirection == NullLeft {
				node = node.Left
			} else {
				node = node.Right
			}
		case value < node.SplitInfo.Threshold:
			node = node.Left
		default:
			node = node.Right
		}
	}
	if node.Prediction == nil {
		return 0, errors.WithStack(ErrNoPredictionInLeaf)
	}
	return *node.Prediction, nil
}
