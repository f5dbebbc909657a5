// Package terminal decides how many columns of output fit the user's
// terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	// FallbackWidth is used when the terminal size cannot be detected.
	FallbackWidth = 80
	// MinWidth is the narrowest auto-detected width that will be used.
	MinWidth = 40
	// Margin is left free on the right of an auto-detected width.
	Margin = 2
)

// Source records where a resolved width came from.
type Source int

const (
	User Source = iota
	AutoDetected
	Fallback
)

func (s Source) String() string {
	switch s {
	case User:
		return "user"
	case AutoDetected:
		return "auto-detected"
	default:
		return "fallback"
	}
}

// Resolution is the output width together with its provenance.
type Resolution struct {
	Width  int
	Source Source
}

// Detect returns the size of the terminal attached to stdout. ok is false
// when stdout is not a terminal or its size is unknown.
func Detect() (cols, rows int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

// ResolveWidth picks the output width. A user supplied width always wins.
// Otherwise the detected width less Margin is used, but never below
// MinWidth, and FallbackWidth when nothing was detected.
func ResolveWidth(userWidth int, userSet bool, detected int, ok bool) Resolution {
	if userSet {
		return Resolution{Width: userWidth, Source: User}
	}
	if !ok {
		return Resolution{Width: FallbackWidth, Source: Fallback}
	}
	width := detected - Margin
	if width < MinWidth {
		width = MinWidth
	}
	return Resolution{Width: width, Source: AutoDetected}
}
