// Package ui renders shell output.
//
// Directory listings are drawn as a lipgloss table; greetings, location
// lines and failure notices go through a termenv output so they are coloured
// on a terminal and plain when stdout is a pipe or file.
package ui
