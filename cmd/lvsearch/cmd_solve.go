package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/problemfile"
	"github.com/katalvlaran/lvsearch/search"
)

var solveFlags struct {
	file string
	searchFlags
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one problem file and print the path",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFlags.file, "file", "f", "", "Problem file (required)")
	addSearchFlags(solveCmd, &solveFlags.searchFlags)
	_ = solveCmd.MarkFlagRequired("file")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := solveFile(cmd.Context(), cmd.OutOrStdout(), solveFlags.file, solveFlags.searchFlags, s.options()); err != nil {
		return err
	}

	return s.close()
}

func solveFile(ctx context.Context, out io.Writer, path string, sf searchFlags, base []search.Option) error {
	f, err := problemfile.Load(path)
	if err != nil {
		return err
	}
	opts, err := sf.apply(f)
	if err != nil {
		return err
	}
	sum, err := f.Solve(ctx, append(base, opts...)...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	printSummary(out, sum)

	return nil
}

func printSummary(out io.Writer, sum *problemfile.Summary) {
	fmt.Fprintf(out, "Problem:   %s\n", sum.Name)
	fmt.Fprintf(out, "Algorithm: %s\n", sum.Algorithm)
	fmt.Fprintf(out, "Outcome:   %s\n", sum.Outcome)
	if sum.Outcome == search.Found {
		fmt.Fprintf(out, "Cost:      %g\n", sum.Cost)
		fmt.Fprintf(out, "Path:      %s\n", strings.Join(sum.Path, " -> "))
	}
	fmt.Fprintf(out, "Expanded:  %d (generated %d, max frontier %d)\n",
		sum.Stats.Expanded, sum.Stats.Generated, sum.Stats.MaxFrontier)
}
