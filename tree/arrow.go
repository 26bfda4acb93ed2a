package tree

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/arrow/array"

	"github.com/cunialino/know-your-trees/pkg/errors"
)

// FromRecord converts an Arrow record batch into a MapDataSet. Float64
// columns are copied as-is; Float32 and Int32 columns are widened to float64
// with a DataConversionWarning. Null entries become missing values.
//
// Arrow record batches are the natural hand-off point for callers that load
// columnar files; the core itself only ever sees the DataSet contract.
func FromRecord(rec array.Record) (MapDataSet, error) {
	schema := rec.Schema()
	ds := make(MapDataSet, rec.NumCols())

	for i := 0; i < int(rec.NumCols()); i++ {
		field := schema.Field(i)
		col := rec.Column(i)
		values := make(Column, col.Len())

		switch arr := col.(type) {
		case *array.Float64:
			for j := 0; j < arr.Len(); j++ {
				if arr.IsNull(j) {
					values[j] = math.NaN()
				} else {
					values[j] = arr.Value(j)
				}
			}
		case *array.Float32:
			errors.Warn(errors.NewDataConversionWarning("float32", "float64",
				fmt.Sprintf("arrow column %q widened", field.Name)))
			for j := 0; j < arr.Len(); j++ {
				if arr.IsNull(j) {
					values[j] = math.NaN()
				} else {
					values[j] = float64(arr.Value(j))
				}
			}
		case *array.Int32:
			errors.Warn(errors.NewDataConversionWarning("int32", "float64",
				fmt.Sprintf("arrow column %q widened", field.Name)))
			for j := 0; j < arr.Len(); j++ {
				if arr.IsNull(j) {
					values[j] = math.NaN()
				} else {
					values[j] = float64(arr.Value(j))
				}
			}
		default:
			return nil, errors.NewValueError("from_record",
				fmt.Sprintf("unsupported column type %s for feature %q", col.DataType().Name(), field.Name))
		}

		if _, dup := ds[field.Name]; dup {
			return nil, errors.NewValidationError("schema", "feature names must be unique", field.Name)
		}
		ds[field.Name] = values
	}
	return ds, nil
}
