//go:build transmutegen

package testdata

import (
	"time"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

type Color uint8

const (
	Red Color = iota
	Green
)

const Loose = 2

var v Color

const Jan = time.January

var A = transmute.EnumAlias[Color, uint8](Loose) // want `member Loose of A has type untyped int; want Color`

var B = transmute.EnumAlias[Color, uint8](v) // want `member of B must name a constant of Color; got v`

var C = transmute.EnumAlias[Color, uint8](Red + 1) // want `member of C must name a constant of Color; got Red \+ 1`

var D = transmute.EnumAlias[time.Month, int](Jan) // want `member Jan of D is declared outside package time`

var E = transmute.EnumAlias[time.Month, int](time.March, time.June) // ok
