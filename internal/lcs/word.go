// Package lcs finds the longest common word prefix of identifiers.
package lcs

import (
	"cmp"
	"slices"
	"strings"
)

// CommonWordPrefix returns the longest common prefix of the strings in ss based
// on word boundaries detected by SplitWords.
func CommonWordPrefix(ss []string) string {
	var sss [][]string
	for _, s := range ss {
		words := SplitWords(s)
		sss = append(sss, words)
	}
	return strings.Join(lcsWord(sss), "")
}

// TrimCommonWordPrefix removes the common word prefix of ss from s. If nothing
// would remain of s, or if the remainder does not start with a letter, s is
// returned as is.
//
//	TrimCommonWordPrefix("ColorRed", []string{"ColorRed", "ColorBlue"}) // "Red"
//	TrimCommonWordPrefix("Level1", []string{"Level1", "Level2"})        // "Level1"
func TrimCommonWordPrefix(s string, ss []string) string {
	if len(ss) < 2 {
		return s
	}

	prefix := CommonWordPrefix(ss)
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return s
	}

	rest := strings.TrimLeft(s[len(prefix):], "_")
	if rest == "" || !isLetter(rest[0]) {
		return s
	}
	return rest
}

// lcsWord implements the longest common subsequence algorithm for a slice of
// string slices.
func lcsWord(words [][]string) []string {
	if len(words) == 0 {
		return nil
	}

	cmpFn := func(a, b []string) int {
		for i := 0; i < min(len(a), len(b)); i++ {
			if cmp := cmp.Compare(a[i], b[i]); cmp != 0 {
				return cmp
			}
		}
		return cmp.Compare(len(a), len(b))
	}

	first := slices.MinFunc(words, cmpFn)
	last := slices.MaxFunc(words, cmpFn)

	for i := range first {
		if first[i] != last[i] {
			return first[:i]
		}
	}
	return first
}

// SplitWords splits a string into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		splitted := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				splitted = true
				break
			}
		}

		if !splitted {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

func isLetter(b byte) bool { return isLower(b) || isUpper(b) }
func isLower(b byte) bool  { return 'a' <= b && b <= 'z' }
func isUpper(b byte) bool  { return 'A' <= b && b <= 'Z' }
func isDigit(b byte) bool  { return '0' <= b && b <= '9' }

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	switch {
	case isLower(prev) && isUpper(curr):
		// camelCase
		return true
	case isUpper(curr) && isLower(next):
		// HTTPServer
		return true
	case prev != '_' && curr == '_', prev == '_' && curr != '_':
		return true
	case isLetter(prev) && isDigit(curr), isDigit(prev) && isLetter(curr):
		return true
	}
	return false
}
