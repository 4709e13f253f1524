package hvsampledata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"strconv"
)

// clusterSeed fixes the synthetic_clusters generator. The dataset must be
// byte-identical across runs and machines for a given total_points.
const clusterSeed = 9221

// clusterCats are the five cluster categories; total_points is split evenly
// across them, which is why it must be a multiple of 5.
var clusterCats = [5]string{"d1", "d2", "d3", "d4", "d5"}

// clusterCenters are the fixed (x, y) centers of the five clusters.
var clusterCenters = [5][2]float64{
	{2, 2},
	{-2, 2},
	{-2, -2},
	{2, -2},
	{0, 0},
}

// generateClusters renders the synthetic_clusters CSV for the given row
// count. Points are drawn cluster by cluster from a seeded source, so the
// first rows of a larger dataset are not a prefix of a smaller one, but any
// two runs with equal n agree exactly.
func generateClusters(n int) ([]byte, error) {
	rng := rand.New(rand.NewSource(clusterSeed))

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"x", "y", "s", "val", "cat"}); err != nil {
		return nil, fmt.Errorf("generate clusters: %w", err)
	}

	perCluster := n / len(clusterCats)
	for i, cat := range clusterCats {
		cx, cy := clusterCenters[i][0], clusterCenters[i][1]
		for j := 0; j < perCluster; j++ {
			x := cx + rng.NormFloat64()
			y := cy + rng.NormFloat64()
			s := 0.2 + 0.8*rng.Float64()
			val := 10*(i+1) + rng.Intn(10)
			record := []string{
				strconv.FormatFloat(x, 'f', 6, 64),
				strconv.FormatFloat(y, 'f', 6, 64),
				strconv.FormatFloat(s, 'f', 6, 64),
				strconv.Itoa(val),
				cat,
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("generate clusters: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("generate clusters: %w", err)
	}
	return buf.Bytes(), nil
}
