package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathtrace"
)

func newTraceCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Trace one diagram read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTrace(cmd, args, explain)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print the failure cause after Error")
	return cmd
}

func (a *app) runTrace(cmd *cobra.Command, args []string, explain bool) error {
	// 1. Read the diagram
	var in io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return a.fail(cmd, err)
		}
		defer f.Close()
		in, name = f, args[0]
	} else if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "reading diagram from stdin, end with Ctrl-D")
	}
	g, err := grid.Read(in)
	if err != nil {
		return a.fail(cmd, fmt.Errorf("%s: %w", name, err))
	}

	// 2. Trace with configured options
	opts, err := a.cfg.TraceOptions()
	if err != nil {
		return a.fail(cmd, err)
	}
	opts = append(opts, pathtrace.WithContext(cmd.Context()), pathtrace.WithOnStep(a.stepLogger()))

	a.log.Info("tracing", zap.String("source", name), zap.Int("rows", g.Height()), zap.Int("cols", g.Width()))
	res, err := pathtrace.Walk(g, opts...)
	if err != nil {
		a.log.Info("trace failed", zap.String("source", name), zap.Error(err))
	}

	// 3. Report
	newPrinter(cmd.OutOrStdout(), a.cfg.NoColor).result(res, err, explain)
	if err != nil || res.Letters == "" {
		return errReported
	}
	return nil
}

// stepLogger logs every trace step at debug level.
func (a *app) stepLogger() func(pathtrace.Step) error {
	return func(st pathtrace.Step) error {
		a.log.Debug("step",
			zap.Int("index", st.Index),
			zap.Stringer("pos", st.Position),
			zap.String("char", string(st.Char)),
			zap.Stringer("dir", st.Direction))
		return nil
	}
}
