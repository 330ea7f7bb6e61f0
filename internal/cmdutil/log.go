// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	warnTag  = color.New(color.FgYellow, color.Bold)
	errorTag = color.New(color.FgRed, color.Bold)
)

// Warnf prints a WARN: line unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, tag(dst, warnTag, "WARN:")+" "+format+"\n", a...)
}

// Errorf prints an error: line. It is never suppressed.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, tag(dst, errorTag, "error:")+" "+format+"\n", a...)
}

// tag colours s when dst is a terminal and NO_COLOR is unset.
func tag(dst io.Writer, c *color.Color, s string) string {
	if !colorable(dst) {
		return s
	}
	cc := *c
	cc.EnableColor()
	return cc.Sprint(s)
}

func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
