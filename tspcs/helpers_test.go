package tspcs_test

import (
	"testing"

	"github.com/katalvlaran/evoprob/tour"
	"github.com/katalvlaran/evoprob/tspcs"
	"github.com/stretchr/testify/require"
)

// fullChromosome builds a FULL-encoding chromosome of the size Dimensions
// prescribes, selecting the closed cycle t[0]→t[1]→…→t[n−1]→t[0]. Auxiliary
// and integer-copy slots stay zero.
func fullChromosome(tb testing.TB, t []int, n int) []float64 {
	tb.Helper()
	cont, integ := tspcs.Dimensions(n, tspcs.Full)
	require.Len(tb, t, n)

	x := make([]float64, cont+integ)
	for i := 0; i < n; i++ {
		x[tour.ArcIndex(t[i], t[(i+1)%n], n)] = 1
	}
	return x
}
