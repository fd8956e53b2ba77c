package util

import "github.com/mgutz/ansi"

var (
	bold = ansi.ColorFunc("default+b")
	dim  = ansi.ColorFunc("black+h")
)

// Bold makes the input string bold.
func Bold(s string) string {
	return bold(s)
}

// Dim renders the input string in a faint gray used for hints.
func Dim(s string) string {
	return dim(s)
}
