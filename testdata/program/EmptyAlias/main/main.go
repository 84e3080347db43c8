//go:build !transmutegen

package main

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

func main() {
	// Output: [] 0
	fmt.Println(noneValues(), len(noneValues()))

	// Output: false
	_, ok := noneFromParent(levelInfo)
	fmt.Println(ok)

	// Output: narrowing level -1 to none: not representable
	var n none
	fmt.Println(n.FromParent(levelDebug))

	// Output: [1] 1
	fmt.Println(loudValues(), loudWarn.AsParent())

	// Output: 1 <nil>
	fmt.Println(transmute.Narrow[loud](levelWarn))
}
