package testdata

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	Red Color = iota
	Green
)

var ColorToByte = transmute.Bitcast[Color, uint8](transmute.Unsafe) // ok, guards need no constraint

var Primary = transmute.EnumAlias[Color, uint8](Red) // want `file must have "//go:build transmutegen" constraint when using EnumAlias`

var Secondary = transmute.EnumAlias[Color, uint8](Green) // ok, reported once per file
