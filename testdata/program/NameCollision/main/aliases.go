//go:build transmutegen

package main

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
)

const PrimaryRed = "taken"

func PrimaryValues() []string { return nil }

var Primary = transmute.EnumAlias[Color, uint8](ColorRed, ColorBlue)
