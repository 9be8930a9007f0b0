package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathtrace/pathtrace"
	"github.com/katalvlaran/pathtrace/samples"
)

func newSamplesCmd(a *app) *cobra.Command {
	var (
		check   bool
		list    bool
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "samples [name...]",
		Short: "Trace the built-in sample diagrams",
		Long:  `Traces every sample, or only the named ones, using each sample's own crossing policy unless --crossing is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.loadSamples()
			if err != nil {
				return a.fail(cmd, err)
			}
			if list {
				for _, s := range all {
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", s.Name, s.Title)
				}
				return nil
			}
			selected, err := selectSamples(all, args)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.runSamples(cmd, selected, check, explain)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "fail when a sample differs from its expected result")
	cmd.Flags().BoolVar(&list, "list", false, "list sample names and exit")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the failure cause after Error")
	return cmd
}

// loadSamples returns the built-in catalog followed by the configured one.
func (a *app) loadSamples() ([]samples.Sample, error) {
	all, err := samples.All()
	if err != nil {
		return nil, err
	}
	if a.cfg.Catalog == "" {
		return all, nil
	}

	f, err := os.Open(a.cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	extra, err := samples.Load(f)
	if err != nil {
		return nil, err
	}
	return append(all, extra...), nil
}

// selectSamples keeps the named samples in argument order; no names keeps all.
func selectSamples(all []samples.Sample, names []string) ([]samples.Sample, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]samples.Sample, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	out := make([]samples.Sample, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", samples.ErrUnknownSample, n)
		}
		out = append(out, s)
	}
	return out, nil
}

func (a *app) runSamples(cmd *cobra.Command, list []samples.Sample, check, explain bool) error {
	var opts []pathtrace.Option
	if cmd.Flags().Changed("crossing") {
		policy, err := pathtrace.ParseCrossingPolicy(a.cfg.Crossing)
		if err != nil {
			return a.fail(cmd, err)
		}
		opts = append(opts, pathtrace.WithCrossingPolicy(policy))
	}
	opts = append(opts,
		pathtrace.WithMaxSteps(a.cfg.MaxSteps),
		pathtrace.WithOnStep(a.stepLogger()))

	// Traces are independent; run them concurrently and report in order.
	type outcome struct {
		res pathtrace.Result
		err error
	}
	outcomes := make([]outcome, len(list))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	opts = append(opts, pathtrace.WithContext(ctx))
	for i, s := range list {
		i, s := i, s
		g.Go(func() error {
			res, err := s.Run(opts...)
			outcomes[i] = outcome{res: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	p := newPrinter(cmd.OutOrStdout(), a.cfg.NoColor)
	mismatches := 0
	for i, s := range list {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		res, err := outcomes[i].res, outcomes[i].err
		if err != nil {
			a.log.Info("sample failed", zap.String("sample", s.Name), zap.Error(err))
		}
		p.heading(s.Title)
		p.result(res, err, explain)

		if res != s.Expect {
			mismatches++
			a.log.Warn("unexpected result",
				zap.String("sample", s.Name),
				zap.String("want_letters", s.Expect.Letters),
				zap.String("got_letters", res.Letters))
		}
	}

	if check && mismatches > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d sample(s) differ from their expected result\n", mismatches)
		return errReported
	}
	return nil
}
