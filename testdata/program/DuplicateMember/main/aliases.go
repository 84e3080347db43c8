//go:build transmutegen

package main

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Crimson = Red
)

var Primary = transmute.EnumAlias[Color, uint8](Red, Blue, Red)

var Reds = transmute.EnumAlias[Color, uint8](Red, Crimson)
