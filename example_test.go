package mahout_test

import (
	"context"
	"fmt"
	"log"

	mahout "github.com/Sathyasri1/mahout"
	"github.com/Sathyasri1/mahout/blockmat"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/vector"
)

func Example() {
	ctx := context.Background()

	clusterer, err := mahout.NewCanopyClusterer(
		mahout.WithThresholds(3.0, 1.5),
		mahout.WithMetric(distance.MetricEuclidean),
	)
	if err != nil {
		log.Fatal(err)
	}

	rows := []vector.Vector{
		vector.Dense{0, 0}, vector.Dense{0, 1},
		vector.Dense{10, 10}, vector.Dense{10, 11},
		vector.Dense{20, 0}, vector.Dense{20, 1},
	}
	data := blockmat.New(rows, 2)

	model, err := clusterer.Fit(ctx, data)
	if err != nil {
		log.Fatal(err)
	}

	labels, err := model.Assign(ctx, data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(model.Summary())
	fmt.Println(labels)
	// Output:
	// CanopyModel: centers=3 metric=Euclidean dim=2
	// [0 0 1 1 2 2]
}
