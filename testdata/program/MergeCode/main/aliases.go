//go:build transmutegen

package main

import (
	"strings"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

type Grade int

const (
	GradeLow Grade = iota
	GradeMid
	GradeHigh
)

var (
	// Passing grades earn a certificate.
	Passing = transmute.EnumAlias[Grade, int](GradeMid, GradeHigh)
	label   = strings.ToUpper("grades") // printed as a heading
)

// Celsius is a temperature.
type Celsius float64

var CelsiusToFloat = transmute.Bitcast[Celsius, float64](transmute.Unsafe)
