//go:build transmutegen

package testdata

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

type Color uint8

const (
	Red Color = iota
	Green
)

var Primary = transmute.EnumAlias[Color, uint8](Red) // ok

var copied = Primary // want `cannot use "Primary" as a value; it becomes a type at code generation`

func F() {
	fmt.Println(Primary) // want `cannot use "Primary" as a value; it becomes a type at code generation`
}

var _ = transmute.Bitcast[Color, uint8](transmute.Unsafe) // ok, not a directive
