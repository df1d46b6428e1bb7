// Package clusterkit provides k-means clustering with batch and online
// training for Go.
//
// Clusterkit is a library-style, in-process toolbox built around a shared
// nearest-centroid assignment engine with first-class missing-value support:
//
//   - Batch training (Lloyd's algorithm) with partition-based convergence
//     detection and per-iteration quantization-error history
//   - Sequential (online) training with a linearly decaying learning rate
//     and a fixed sample permutation for reproducibility
//   - Missing components (NaN) handled via per-row validity masks decided
//     once at data-load time; distances run over known components only
//   - Parallel batch assignment across samples, never changing results
//
// # Quick Start
//
//	ds, err := dataset.New(rows) // rows: [][]float64, NaN marks missing
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := clusterkit.Train(ctx, ds,
//	    clusterkit.WithClusters(8),
//	    clusterkit.WithRand(rand.New(rand.NewSource(42))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.QuantizationError)
//
// # Method Selection
//
//   - Batch: deterministic given the initial centroids, stops early on a
//     stable partition. The default.
//   - Sequential: single pass of epochs × samples online steps; useful when
//     data should be weighted by recency of presentation or as a SOM-style
//     baseline.
//
// Initial centroids are either k distinct random samples (WithClusters) or
// caller-supplied (WithInitialCentroids). An empty batch cluster keeps its
// previous centroid; it is never reseeded.
//
// # Observability
//
// Training is silent by default. WithVerbose enables Info-level progress to
// stderr; WithLogger accepts any slog handler for structured output.
package clusterkit
