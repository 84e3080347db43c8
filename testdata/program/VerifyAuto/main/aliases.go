//go:build transmutegen

package main

import transmute "github.com/coolCucumber-cat/transmute-guard"

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Red = transmute.EnumAlias[Suit, uint8](Diamonds, Hearts)
