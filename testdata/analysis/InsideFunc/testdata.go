//go:build transmutegen

package testdata

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	Red Color = iota
	Green
)

func F1() {
	local := transmute.EnumAlias[Color, uint8](Red) // want `cannot declare EnumAlias inside function`
	_ = local
}

var F2 = func() any {
	return transmute.EnumAlias[Color, uint8](Green) // want `cannot declare EnumAlias inside function`
}

var nested = []any{transmute.EnumAlias[Color, uint8](Green)} // want `EnumAlias must be assigned to a package-level variable`

var (
	a, b = transmute.EnumAlias[Color, uint8](Red), 42 // ok
	_    = b
)

var c, d = pair() // ok, no directive

func pair() (int, int) { return 0, 0 }
