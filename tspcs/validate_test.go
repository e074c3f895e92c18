// Package tspcs_test contains unit tests for instance construction and the
// weight-matrix validator, including the documented row-major error priority.
package tspcs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/evoprob/tspcs"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// unitWeights returns the n-city matrix with zero diagonal and unit
// off-diagonal entries.
func unitWeights(n int) *mat.Dense {
	w := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				w.Set(i, j, 1)
			}
		}
	}
	return w
}

// ones returns a length-n vector of ones.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	tests := []struct {
		name    string
		weights mat.Matrix
		values  []float64
		wantErr error
	}{
		{"valid 3-city", unitWeights(3), ones(3), nil},
		{"valid single city", mat.NewDense(1, 1, []float64{0}), ones(1), nil},
		{"valid asymmetric", mat.NewDense(2, 2, []float64{0, 2, 5, 0}), ones(2), nil},
		{"nil matrix", nil, ones(3), tspcs.ErrSizeMismatch},
		{"not square", mat.NewDense(2, 3, nil), ones(2), tspcs.ErrNotSquare},
		{
			"non-zero diagonal",
			mat.NewDense(2, 2, []float64{0, 1, 1, 0.5}),
			ones(2),
			tspcs.ErrDiagonalNotZero,
		},
		{
			"zero off-diagonal",
			mat.NewDense(2, 2, []float64{0, 0, 1, 0}),
			ones(2),
			tspcs.ErrDisconnectedEdge,
		},
		{
			"NaN off-diagonal",
			mat.NewDense(2, 2, []float64{0, nan, 1, 0}),
			ones(2),
			tspcs.ErrInvalidWeight,
		},
		{
			"row-major priority: zero before NaN",
			mat.NewDense(3, 3, []float64{0, 0, nan, 1, 0, 1, 1, 1, 0}),
			ones(3),
			tspcs.ErrDisconnectedEdge,
		},
		{
			"row-major priority: NaN before zero",
			mat.NewDense(3, 3, []float64{0, nan, 0, 1, 0, 1, 1, 1, 0}),
			ones(3),
			tspcs.ErrInvalidWeight,
		},
		{"values too short", unitWeights(3), ones(2), tspcs.ErrSizeMismatch},
		{"values too long", unitWeights(3), ones(4), tspcs.ErrSizeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := tspcs.New(tc.weights, tc.values, 1.0, tspcs.RandomKeys)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, p)

				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestNew_UnsupportedEncoding(t *testing.T) {
	t.Parallel()

	_, err := tspcs.New(unitWeights(3), ones(3), 1.0, tspcs.Encoding(42))
	require.ErrorIs(t, err, tspcs.ErrUnsupportedEncoding)
}

func TestNew_CopiesInputs(t *testing.T) {
	t.Parallel()

	w := unitWeights(3)
	v := []float64{1, 2, 3}
	p, err := tspcs.New(w, v, 1.0, tspcs.Cities)
	require.NoError(t, err)

	// Mutating the caller's inputs must not leak into the instance.
	w.Set(0, 1, 99)
	v[0] = -7

	d, err := p.Distance(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
	require.Equal(t, []float64{1, 2, 3}, p.Values())
	require.Equal(t, 1.0, p.MinValue())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	p := tspcs.Default()
	require.Equal(t, 3, p.NCities())
	require.Equal(t, tspcs.RandomKeys, p.Encoding())
	require.Equal(t, 1.0, p.MaxPathLength())
	require.Equal(t, 1.0, p.MinValue())
	require.Equal(t, []float64{1, 1, 1}, p.Values())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d, err := p.Distance(i, j)
			require.NoError(t, err)
			if i == j {
				require.Zero(t, d)
			} else {
				require.Equal(t, 1.0, d)
			}
		}
	}

	_, err := p.Distance(0, 3)
	require.ErrorIs(t, err, tspcs.ErrOutOfRange)
	_, err = p.Distance(-1, 0)
	require.ErrorIs(t, err, tspcs.ErrOutOfRange)
}

func TestEncoding_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "FULL", tspcs.Full.String())
	require.Equal(t, "RANDOMKEYS", tspcs.RandomKeys.String())
	require.Equal(t, "CITIES", tspcs.Cities.String())
	require.Equal(t, "UNKNOWN", tspcs.Encoding(42).String())
}
