//go:build transmutegen

package testdata

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorCrimson = ColorRed
)

const AllRed = "taken"

var A = transmute.EnumAlias[Color, uint8](ColorRed, ColorGreen, ColorRed) // want `duplicate member ColorRed in A`

var B = transmute.EnumAlias[Color, uint8](ColorRed, ColorCrimson) // want `member ColorCrimson has the same value 0 as ColorRed in B`

var All = transmute.EnumAlias[Color, uint8](ColorRed) // want `AllRed generated for All is already declared`
