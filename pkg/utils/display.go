package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters such as CJK glyphs and emoji occupy two terminal cells;
// tool titles in a catalog regularly contain both.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces up to the given display width.
//
// Parameters:
//   - val: The string to pad
//   - width: Target display width; values <= 0 leave the string untouched
//
// Returns:
//   - string: The padded string, or the original if already wide enough
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Truncate shortens a string to at most width display cells, appending
// "..." when something was cut.
func Truncate(val string, width int) string {
	if width <= 0 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, "...")
}

// Max returns the maximum value from a list of integers, or 0 when empty.
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
