// Package output provides console status lines for the CLI
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer handles formatted status output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer; nil writers fall back to stdout and stderr
func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if err == nil {
		err = os.Stderr
	}
	return &Printer{
		out:       out,
		err:       err,
		useColors: useColors,
	}
}

// ResolveColors turns colors off for NO_COLOR and dumb terminals
func ResolveColors(enabled bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return enabled
}

func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) Info(format string, args ...interface{}) {
	p.print(p.out, color.FgCyan, "", format, args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	p.print(p.out, color.FgGreen, "[OK] ", format, args...)
}

func (p *Printer) Warning(format string, args ...interface{}) {
	p.print(p.out, color.FgYellow, "[WARN] ", format, args...)
}

func (p *Printer) Error(format string, args ...interface{}) {
	p.print(p.err, color.FgRed, "[ERROR] ", format, args...)
}

func (p *Printer) print(w io.Writer, attr color.Attribute, prefix, format string, args ...interface{}) {
	if !p.useColors {
		fmt.Fprintf(w, prefix+format+"\n", args...)
		return
	}
	c := color.New(attr)
	c.EnableColor()
	c.Fprintf(w, prefix+format+"\n", args...)
}
