//go:build !transmutegen

package main

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
)

func main() {
	// Output: true
	fmt.Println(transmute.Verifying)

	// Output: 3
	bad := Red(Spades)
	fmt.Println(bad.AsParent())
}
