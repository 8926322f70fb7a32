package graph

import (
	"math"
	"strings"
)

// Fill is the character used for the occupied part of a bar
const Fill = "#"

// RenderBar renders fraction as a bar of exactly width characters. The fraction is
// clamped into [0,1] and the filled cell count is rounded to the nearest integer.
func RenderBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := Filled(fraction, width)
	return strings.Repeat(Fill, filled) + strings.Repeat(" ", width-filled)
}

// Filled returns how many of width cells RenderBar fills for fraction
func Filled(fraction float64, width int) int {
	if width <= 0 {
		return 0
	}
	return int(math.Round(clamp(fraction) * float64(width)))
}

// Fraction returns part/total, or 0 when total is 0
func Fraction(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// Percent converts a fraction into a percentage
func Percent(fraction float64) float64 {
	return fraction * 100
}

func clamp(f float64) float64 {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
