package util

import "github.com/mgutz/ansi"

var (
	bold  = ansi.ColorFunc("default+b")
	faint = ansi.ColorFunc("default+d")
)

// Bold makes the input string bold.
func Bold(s string) string {
	return bold(s)
}

// Faint renders the input string with the dimmed terminal color.
func Faint(s string) string {
	return faint(s)
}
