//go:build transmutegen

package testdata

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	Red Color = iota
	Green
)

var _ = transmute.EnumAlias[Color, uint8](Red) // want `cannot assign EnumAlias to blank identifier`

var Fine = transmute.EnumAlias[Color, uint8](Red, Green) // ok
