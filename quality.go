package clusterkit

import (
	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
)

// QuantizationError returns the summed squared distance from each sample to
// its assigned centroid. Samples with missing components contribute distance
// over their known components only, matching the training semantics.
func QuantizationError(ds *dataset.Dataset, centroids [][]float64, partition []int) (float64, error) {
	if len(partition) != ds.Len() {
		return 0, &ErrShapeMismatch{Expected: ds.Len(), Actual: len(partition)}
	}

	dim := ds.Dim()
	for _, c := range centroids {
		if len(c) != dim {
			return 0, &ErrShapeMismatch{Expected: dim, Actual: len(c)}
		}
	}

	var qe float64
	for i := 0; i < ds.Len(); i++ {
		qe += distance.MaskedSquaredL2(ds.Row(i), centroids[partition[i]], ds.Mask(i))
	}
	return qe, nil
}

// MapQuality pairs the two standard quality measures of a trained map.
type MapQuality struct {
	// QuantizationError measures representation fidelity: summed squared
	// distance from samples to their best-matching unit.
	QuantizationError float64

	// TopographicError measures neighborhood preservation: the fraction of
	// samples whose first- and second-best matching units are not adjacent
	// on the map topology.
	TopographicError float64
}

// QualityFunc computes the quality of a trained codebook against a data set.
// Implementations that know the map topology (e.g. a SOM grid) supply the
// topographic error; plain k-means consumers can treat it as zero.
type QualityFunc func(codebook [][]float64, ds *dataset.Dataset) (MapQuality, error)
