// Package dataset provides the in-memory sample matrix used for clustering.
//
// A Dataset is an ordered sequence of fixed-dimension samples. Missing
// components are marked NaN in the input; they are detected once at load
// time and represented as per-row validity bit sets afterwards, so training
// code never rescans rows for NaN.
//
// # Usage
//
//	ds, err := dataset.New([][]float64{
//	    {0, 0},
//	    {0, math.NaN()}, // second component unknown
//	})
package dataset
