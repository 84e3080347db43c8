//go:build transmutegen

package testdata

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	Red Color = iota
	Green
)

var members = []Color{Red, Green}

var A = transmute.EnumAlias[Color, uint16](Red) // want `representation uint16 does not match parent Color; want uint8`

var B = transmute.EnumAlias[int, int](1) // want `parent int must be a defined enum type`

var C = transmute.EnumAlias[Color, uint8](members...) // want `members of C must be listed one by one`

var D = (transmute.EnumAlias[Color, uint8](Green)) // ok
