package tree

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cunialino/know-your-trees/pkg/errors"
)

// FromMatrix converts a dense numeric matrix into a MapDataSet, one named
// column per matrix column. NaN entries stay missing. All values are
// normalized to float64 at this boundary so the scoring and search layers
// never deal with other numeric types.
//
// names assigns feature names in column order; pass nil to auto-generate
// "F1".."Fn".
func FromMatrix(x mat.Matrix, names []string) (MapDataSet, error) {
	numRows, numCols := x.Dims()

	if names == nil {
		names = make([]string, numCols)
		for j := 0; j < numCols; j++ {
			names[j] = fmt.Sprintf("F%d", j+1)
		}
	}
	if len(names) != numCols {
		return nil, errors.NewDimensionError("from_matrix", numCols, len(names), 1)
	}

	ds := make(MapDataSet, numCols)
	for j := 0; j < numCols; j++ {
		col := make(Column, numRows)
		for i := 0; i < numRows; i++ {
			col[i] = x.At(i, j)
		}
		if _, dup := ds[names[j]]; dup {
			return nil, errors.NewValidationError("names", "feature names must be unique", names[j])
		}
		ds[names[j]] = col
	}
	return ds, nil
}
