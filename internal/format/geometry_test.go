package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsByDiagonal(t *testing.T) {
	h, v, err := DimensionsByDiagonal(25.4, 3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 15.24, h, 1e-9)
	assert.InDelta(t, 20.32, v, 1e-9)

	h, v, err = DimensionsByDiagonal(InchToCm(21.5), 1920, 1080)
	require.NoError(t, err)
	assert.InDelta(t, 47.6, h, 0.01)
	assert.InDelta(t, 26.77, v, 0.01)
	assert.InDelta(t, InchToCm(21.5), DiagonalSize(h, v), 1e-9)
}

func TestDimensionsByDiagonalOneAxis(t *testing.T) {
	h, v, err := DimensionsByDiagonal(10, 0, 768)
	require.NoError(t, err)
	assert.Zero(t, h)
	assert.InDelta(t, 10, v, 1e-9)
}

func TestDimensionsByDiagonalDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		diagonal float64
		h, v     int
	}{
		{name: "zero pixels", diagonal: 50, h: 0, v: 0},
		{name: "negative pixels", diagonal: 50, h: -1920, v: 1080},
		{name: "negative diagonal", diagonal: -1, h: 1920, v: 1080},
		{name: "NaN diagonal", diagonal: math.NaN(), h: 1920, v: 1080},
		{name: "infinite diagonal", diagonal: math.Inf(1), h: 1920, v: 1080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DimensionsByDiagonal(tt.diagonal, tt.h, tt.v)
			require.ErrorIs(t, err, ErrDegenerate)
		})
	}
}

func TestUnitConversion(t *testing.T) {
	assert.InDelta(t, 2.54, InchToCm(1), 1e-12)
	assert.InDelta(t, 24.0, CmToInch(InchToCm(24)), 1e-12)
	assert.InDelta(t, 5.0, DiagonalSize(3, 4), 1e-12)
}
