// Package tlog renders the shell's plain-text protocol output: job
// announcements, stop notifications, and the jobs listing's state words.
// It mirrors the teacher's own native/log package (Println/Printf over a
// configurable writer) but takes the writer explicitly rather than
// through a package-level global, since a *Shell is a library value and
// more than one can be live in the same process (tests build several).
package tlog

import (
	"fmt"
	"io"
)

func Println(w io.Writer, args ...interface{}) {
	fmt.Fprintln(w, args...)
}

func Printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

const (
	reset  = "\x1b[0m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
)

// StateWord wraps a job state word in the color the jobs builtin
// displays it with. go-colorable strips or translates the escapes on
// terminals that don't understand them, so this is safe unconditionally.
func StateWord(word string) string {
	switch word {
	case "Running":
		return green + word + reset
	case "Foreground":
		return cyan + word + reset
	case "Stopped":
		return yellow + word + reset
	default:
		return word
	}
}
