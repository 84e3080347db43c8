//go:build transmutegen

package palette

import (
	transmute "github.com/coolCucumber-cat/transmute-guard"

	"example.com/CrossPackage/colors"
)

var (
	// Warm holds the warm colors.
	Warm = transmute.EnumAlias[colors.Color, int16](colors.ColorRed)

	Cool = transmute.EnumAlias[colors.Color, int16](colors.ColorBlue, colors.ColorGreen) // cool colors
)

// Mix picks the color every palette mixes into.
func Mix() colors.Color { return colors.ColorWhite }
