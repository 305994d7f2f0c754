package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette colors console messages by kind.
type Palette struct {
	heading *color.Color
	success *color.Color
	problem *color.Color
}

// NewPalette creates a palette. Colors are disabled when noColor is set or
// when w is not a terminal.
func NewPalette(w io.Writer, noColor bool) *Palette {
	p := &Palette{
		heading: color.New(color.Bold),
		success: color.New(color.FgGreen),
		problem: color.New(color.FgRed),
	}
	if noColor || !IsTTY(w) {
		p.heading.DisableColor()
		p.success.DisableColor()
		p.problem.DisableColor()
	}
	return p
}

// Heading writes a section title line.
func (p *Palette) Heading(w io.Writer, msg string) {
	p.heading.Fprintln(w, msg)
}

// Success writes a confirmation line.
func (p *Palette) Success(w io.Writer, msg string) {
	p.success.Fprintln(w, msg)
}

// Problem writes a user-input error line.
func (p *Palette) Problem(w io.Writer, msg string) {
	p.problem.Fprintln(w, msg)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
