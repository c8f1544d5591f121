package main

import (
	"iter"
	"strings"
)

// fields yields the pieces of s between occurrences of sep with surrounding
// white space removed, together with their position.
func fields(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		found := true
		var piece string
		for i := 0; found; i++ {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, strings.TrimSpace(piece)) {
				return
			}
		}
	}
}
