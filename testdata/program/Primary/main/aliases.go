//go:build transmutegen

package main

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Primary is the set of colors printed on the cover.
var Primary = transmute.EnumAlias[Color, uint8](Red, Blue)
