//go:build transmutegen

package main

import transmute "github.com/coolCucumber-cat/transmute-guard"

type level int

const (
	levelDebug level = iota - 1
	levelInfo
	levelWarn
)

// none never holds a value.
var none = transmute.EnumAlias[level, int]()

// loud are the levels worth paging for.
var loud = transmute.EnumAlias[level, int](levelWarn)
