//go:build !transmutegen

package main

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

func main() {
	// Output: GRADES
	fmt.Println(label)

	// Output: [1 2] true
	fmt.Println(PassingValues(), PassingHigh.AsParent() == GradeHigh)

	// Output: [21.5 -3]
	temps := []Celsius{21.5, -3}
	fmt.Println(transmute.Slice(CelsiusToFloat.Marker, temps))

	// Output: [bool => uint8 main.Passing => main.Grade]
	fmt.Println(transmute.Default.Pairs())
}
