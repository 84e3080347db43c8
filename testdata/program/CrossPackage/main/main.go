package main

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"

	"example.com/CrossPackage/colors"
	"example.com/CrossPackage/palette"
)

func main() {
	// Output: [1] [3 2]
	fmt.Println(palette.WarmValues(), palette.CoolValues())

	// Output: true
	fmt.Println(palette.CoolGreen.AsParent() == colors.ColorGreen)

	// Output: true true
	c, ok := palette.CoolFromParent(colors.ColorBlue)
	fmt.Println(c == palette.CoolBlue, ok)

	// Output: narrowing colors.Color 3 to Warm: not representable
	var w palette.Warm
	fmt.Println(w.FromParent(colors.ColorBlue))

	// Output: 4
	fmt.Println(palette.Mix())

	// Output: [bool => uint8 palette.Cool => colors.Color palette.Warm => colors.Color]
	fmt.Println(transmute.Default.Pairs())
}
