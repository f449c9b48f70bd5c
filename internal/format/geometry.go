package format

import (
	"fmt"
	"math"
)

// DiagonalSize returns the diagonal of an h x v rectangle in the same unit.
func DiagonalSize(h, v float64) float64 {
	return math.Hypot(h, v)
}

// DimensionsByDiagonal scales the pixel rectangle hPixel x vPixel so its
// diagonal equals diagonal, returning width and height in diagonal's unit.
// It fails when the pixel rectangle has no diagonal or the inputs are
// negative or not finite.
func DimensionsByDiagonal(diagonal float64, hPixel, vPixel int) (h, v float64, err error) {
	if math.IsNaN(diagonal) || math.IsInf(diagonal, 0) || diagonal < 0 {
		return 0, 0, fmt.Errorf("diagonal %v: %w", diagonal, ErrDegenerate)
	}
	if hPixel < 0 || vPixel < 0 {
		return 0, 0, fmt.Errorf("pixels %dx%d: %w", hPixel, vPixel, ErrDegenerate)
	}
	d := DiagonalSize(float64(hPixel), float64(vPixel))
	if d == 0 {
		return 0, 0, fmt.Errorf("pixels %dx%d: %w", hPixel, vPixel, ErrDegenerate)
	}
	scale := diagonal / d
	return float64(hPixel) * scale, float64(vPixel) * scale, nil
}

// InchToCm converts inches to centimeters.
func InchToCm(in float64) float64 { return in * CmPerInch }

// CmToInch converts centimeters to inches.
func CmToInch(cm float64) float64 { return cm / CmPerInch }
