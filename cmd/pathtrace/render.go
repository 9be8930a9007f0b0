package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/pathtrace/pathtrace"
)

// printer writes trace results in the "Result for / Path / Letters / Error"
// layout.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer, noColor bool) printer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return printer{w: w, out: termenv.NewOutput(w, opts...)}
}

// heading prints the title line of a sample.
func (p printer) heading(title string) {
	fmt.Fprintln(p.w, p.out.String("Result for: "+title).Bold())
}

// result prints res when letters were collected and "Error" otherwise.
// With explain set, the failure cause follows the marker.
func (p printer) result(res pathtrace.Result, err error, explain bool) {
	if err == nil && res.Letters != "" {
		fmt.Fprintf(p.w, "Path as characters: %s\n", res.Path)
		fmt.Fprintf(p.w, "Letters: %s\n", p.out.String(res.Letters).Foreground(p.out.Color("2")).Bold())
		return
	}

	marker := p.out.String("Error").Foreground(p.out.Color("1")).Bold()
	if !explain {
		fmt.Fprintln(p.w, marker)
		return
	}
	cause := "no letters collected"
	if err != nil {
		cause = err.Error()
	}
	fmt.Fprintf(p.w, "%s: %s\n", marker, cause)
}
