// Package knowyourtrees provides a single decision tree trainer and predictor
// for columnar data with a boolean target.
//
// The core lives in the tree package: pluggable scoring functions (Gini
// impurity and a gradient/Hessian logistic objective), a greedy best-split
// search over every (feature, threshold) candidate, missing-value routing
// learned per split, and a recursive builder with a configurable maximum
// depth.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/cunialino/know-your-trees/tree"
//	)
//
//	func main() {
//	    ds := tree.MapDataSet{
//	        "F1": tree.Column{1, 2, 3, 4},
//	    }
//	    target := tree.Target{true, true, false, false}
//
//	    fitted, err := tree.Fit(ds, target, tree.TreeConfig{MaxDepth: 3}, tree.NewGini())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    preds, err := fitted.Predict(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predictions:", preds)
//	}
//
// # Packages
//
//   - tree: scoring functions, split search, tree builder and predictor,
//     plus gonum matrix and Arrow record adapters
//   - metrics: binary classification metrics (accuracy, log loss, Brier score)
//   - core/parallel: chunked parallel execution used by the split search
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging built on zerolog
//
// Missing feature values are represented as NaN. Every split records which
// side missing values follow, chosen during training by trying both sides.
package knowyourtrees
