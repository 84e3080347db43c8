//go:build !transmutegen

package main

import (
	"errors"
	"fmt"

	transmute "github.com/coolCucumber-cat/transmute-guard"
	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteerrors"
)

func main() {
	// Output: [Red Blue]
	fmt.Println(PrimaryValues())

	// Output: 2 Blue
	fmt.Println(PrimaryBlue.Underlying(), PrimaryBlue.AsParent())

	// Output: Red
	fmt.Println(transmute.Widen[Color](PrimaryRed))

	// Output: false
	_, ok := PrimaryFromParent(Green)
	fmt.Println(ok)

	// Output: Blue <nil>
	p, err := transmute.Narrow[Primary](Blue)
	fmt.Println(p, err)

	// Output: narrowing Color Green to Primary: not representable true
	_, err = transmute.Narrow[Primary](Green)
	fmt.Println(err, errors.Is(err, transmuteerrors.ErrNotRepresentable))

	// Output: Blue [Red Blue]
	fmt.Println(PrimaryToColor.Value(PrimaryBlue), PrimaryToColor.Slice([]Primary{PrimaryRed, PrimaryBlue}))

	// Output: Blue <nil>
	fmt.Println(transmute.Convert[Primary, Color](transmute.Default, PrimaryBlue))

	// Output: [bool => uint8 main.Primary => main.Color]
	fmt.Println(transmute.Default.Pairs())

	// Output: false
	fmt.Println(transmute.Verifying)
}
