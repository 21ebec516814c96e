package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
)

// Printer writes text responses with the palette's response styles.
type Printer struct {
	w       io.Writer
	palette Palette
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, palette Palette) *Printer {
	return &Printer{w: w, palette: palette}
}

// Success prints a confirmation or help text in the success style.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, styleLines(p.palette.Success, trimBlock(msg)))
}

// Listing prints pre-rendered task blocks as they are.
func (p *Printer) Listing(text string) {
	fmt.Fprintln(p.w, trimBlock(text))
}

// Error prints the error message in the error style.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, styleLines(p.palette.Error, Message(err)))
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var ce *clierr.Error
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

func trimBlock(s string) string {
	return strings.TrimRight(s, "\n")
}
