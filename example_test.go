package clusterkit_test

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/dataset"
)

// Example_batch demonstrates batch (Lloyd) training with explicit initial centroids.
func Example_batch() {
	ds, err := dataset.New([][]float64{
		{0, 0},
		{0, 1},
		{10, 0},
		{10, 1},
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := clusterkit.Train(context.Background(), ds,
		clusterkit.WithMethod(clusterkit.Batch),
		clusterkit.WithInitialCentroids([][]float64{{0, 0}, {10, 0}}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Status, res.Partition, res.QuantizationError)
	// Output: converged [0 0 1 1] 1
}

// Example_sequential demonstrates online training with a seeded random source.
func Example_sequential() {
	ds, err := dataset.New([][]float64{
		{0, 0},
		{0, 1},
		{10, 0},
		{10, 1},
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := clusterkit.Train(context.Background(), ds,
		clusterkit.WithMethod(clusterkit.Sequential),
		clusterkit.WithClusters(2),
		clusterkit.WithEpochs(50),
		clusterkit.WithRand(rand.New(rand.NewSource(42))),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Status, len(res.Centroids))
	// Output: epoch-limit-reached 2
}

// Example_parseMethod demonstrates selecting a method from user input.
func Example_parseMethod() {
	if _, err := clusterkit.ParseMethod("foo"); err != nil {
		fmt.Println("error:", err)
	}
	// Output: error: unsupported training method: "foo"
}
