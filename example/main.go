// Command transmuteexample shows guards, views and enum aliases working
// together. Regenerate the aliases with:
//
//	go run github.com/coolCucumber-cat/transmute-guard/cmd/transmutegen ./jobs
package main

import (
	"errors"
	"fmt"
	"log"

	transmute "github.com/coolCucumber-cat/transmute-guard"
	"github.com/coolCucumber-cat/transmute-guard/ascii"
	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteerrors"

	"example.com/transmuteexample/jobs"
)

func main() {
	// A bool slice viewed as bytes, without copying.
	done := []bool{true, false, true}
	fmt.Println(transmute.Slice(transmute.BoolToUint8.Marker, done))

	// Validated ASCII text viewed as a string.
	name, err := ascii.Chars("nightly-backup")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ascii.String(transmute.Identity[ascii.Char](), name))

	// Widening an alias never fails.
	for _, a := range jobs.ActiveValues() {
		fmt.Printf("%v is active, stored as %d\n", a, transmute.Widen[jobs.Status](a))
	}

	// Narrowing does.
	for _, s := range []jobs.Status{jobs.StatusQueued, jobs.StatusRetrying, jobs.StatusDone} {
		t, err := transmute.Narrow[jobs.Terminal](s)
		switch {
		case errors.Is(err, transmuteerrors.ErrNotRepresentable):
			fmt.Println(err)
		case err != nil:
			log.Fatal(err)
		default:
			fmt.Printf("%v is terminal\n", t)
		}
	}

	// Every alias registers its guard.
	fmt.Println(transmute.Default.Pairs())
}
