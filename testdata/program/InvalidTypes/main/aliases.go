//go:build transmutegen

package main

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	Red Color = iota
	Green
)

var Wide = transmute.EnumAlias[Color, uint16](Red)

var Plain = transmute.EnumAlias[int, int](1)
