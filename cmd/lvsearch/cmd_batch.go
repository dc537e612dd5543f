package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/internal/problemfile"
	"github.com/katalvlaran/lvsearch/search"
)

var batchFlags struct {
	files    []string
	parallel int
	searchFlags
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve several problem files concurrently",
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringArrayVarP(&batchFlags.files, "file", "f", nil, "Problem file, repeatable (required)")
	f.IntVar(&batchFlags.parallel, "parallel", 4, "Maximum concurrent searches (0 = unlimited)")
	addSearchFlags(batchCmd, &batchFlags.searchFlags)
	_ = batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sums, err := solveAll(cmd.Context(), batchFlags.files, batchFlags.parallel, batchFlags.searchFlags, s.options())
	if err != nil {
		return err
	}
	printTable(cmd.OutOrStdout(), batchFlags.files, sums)

	return s.close()
}

// solveAll loads every file first, then solves them with at most parallel
// searches in flight. Summaries keep the order of paths; the first failure
// cancels the remaining searches.
func solveAll(ctx context.Context, paths []string, parallel int, sf searchFlags, base []search.Option) ([]*problemfile.Summary, error) {
	files := make([]*problemfile.File, len(paths))
	runOpts := make([][]search.Option, len(paths))
	for i, p := range paths {
		f, err := problemfile.Load(p)
		if err != nil {
			return nil, err
		}
		opts, err := sf.apply(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		files[i], runOpts[i] = f, append(append([]search.Option(nil), base...), opts...)
	}

	sums := make([]*problemfile.Summary, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, f := range files {
		g.Go(func() error {
			sum, err := f.Solve(gCtx, runOpts[i]...)
			if err != nil {
				return fmt.Errorf("solve %s: %w", paths[i], err)
			}
			sums[i] = sum

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sums, nil
}

func printTable(out io.Writer, paths []string, sums []*problemfile.Summary) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPROBLEM\tALGORITHM\tOUTCOME\tCOST\tEXPANDED")
	for i, sum := range sums {
		cost := "-"
		if sum.Outcome == search.Found {
			cost = fmt.Sprintf("%g", sum.Cost)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			paths[i], sum.Name, sum.Algorithm, sum.Outcome, cost, sum.Stats.Expanded)
	}
	_ = tw.Flush()
}
