// Package ui renders human-facing output and prompts for the CLI surface.
// Nothing here is used when the binary runs as a module under the host runtime.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI provides user interface methods
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, prompts fail instead of reading input
	// Color functions
	colorInfo    *color.Color
	colorOK      *color.Color
	colorChanged *color.Color
	colorSkipped *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorHeader  *color.Color
}

// New creates a new UI instance
func New() *UI {
	return &UI{
		output:       os.Stderr,
		colorInfo:    color.New(color.FgBlue),
		colorOK:      color.New(color.FgGreen),
		colorChanged: color.New(color.FgYellow),
		colorSkipped: color.New(color.FgCyan),
		colorWarning: color.New(color.FgMagenta),
		colorError:   color.New(color.FgRed),
		colorHeader:  color.New(color.FgCyan, color.Bold),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// OK reports a target that was already in the requested state
func (u *UI) OK(msg string) {
	u.colorOK.Fprintf(u.output, "ok: %s\n", msg)
}

// Changed reports a target that was modified
func (u *UI) Changed(msg string) {
	u.colorChanged.Fprintf(u.output, "changed: %s\n", msg)
}

// Skipped reports a target that was not examined
func (u *UI) Skipped(msg string) {
	u.colorSkipped.Fprintf(u.output, "skipping: %s\n", msg)
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "[ERROR] %s\n", msg)
}

// Header prints a header with a box
func (u *UI) Header(title string) {
	border := strings.Repeat("=", 70)

	fmt.Fprintln(u.output)
	u.colorHeader.Fprintln(u.output, border)
	u.colorHeader.Fprintf(u.output, "  %s\n", title)
	u.colorHeader.Fprintln(u.output, border)
	fmt.Fprintln(u.output)
}
