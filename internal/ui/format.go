// Package ui provides terminal styling helpers for informational output.
// Strings that are part of the observable contract ("Created file",
// "Cancelling", the prompts) are printed plain elsewhere; these helpers style
// the supporting commands only.
package ui

import "github.com/fatih/color"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// OK formats a passing check line.
func OK(msg string) string { return green("✓") + " " + msg }

// Fail formats a failing check line.
func Fail(msg string) string { return red("✗") + " " + msg }

// Warn formats a warning line.
func Warn(msg string) string { return yellow("!") + " " + msg }

// Faint de-emphasizes supporting text.
func Faint(msg string) string { return faint(msg) }

// Bold emphasizes a heading or name.
func Bold(msg string) string { return bold(msg) }
