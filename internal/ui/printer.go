package ui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Printer writes the shell's own messages
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a printer on w. The colour profile is detected from w
// unless opts force one (termenv.WithProfile).
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Greeting prints the welcome line
func (p *Printer) Greeting(username string) {
	p.line(greetingColor, fmt.Sprintf("Welcome to the File Manager, %s!", username))
}

// Farewell prints the goodbye line
func (p *Printer) Farewell(username string) {
	p.line(greetingColor, fmt.Sprintf("Thank you for using File Manager, %s, goodbye!", username))
}

// Location prints the current directory line
func (p *Printer) Location(cwd string) {
	p.line(locationColor, "You are currently in "+cwd)
}

// Notice prints a failure notice
func (p *Printer) Notice(msg string) {
	p.line(noticeColor, msg)
}

// Println prints text without styling
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.out, text)
}

// Prompt prints s without a trailing newline
func (p *Printer) Prompt(s string) {
	fmt.Fprint(p.out, s)
}

func (p *Printer) line(color, text string) {
	s := p.out.String(text).Foreground(p.out.Color(color))
	fmt.Fprintln(p.out, s.String())
}
