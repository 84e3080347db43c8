//go:build !transmutegen

package main

import (
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteerrors"
)

func main() {
	fmt.Println(transmute.Verifying)
	fmt.Println(RedHearts.AsParent(), RedDiamonds.AsParent())

	defer func() {
		err := recover().(*transmuteerrors.ViolationError)
		fmt.Println(err)
		fmt.Println(err.Member)
	}()

	bad := Red(Spades)
	bad.AsParent()
	fmt.Println("unreachable")
}
