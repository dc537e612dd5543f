package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/problemfile"
	"github.com/katalvlaran/lvsearch/search"
)

var treeFlags struct {
	file string
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the shortest-path tree of every state reachable from the start",
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeFlags.file, "file", "f", "", "Problem file (required)")
	_ = treeCmd.MarkFlagRequired("file")
}

func runTree(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := printTree(cmd.Context(), cmd.OutOrStdout(), treeFlags.file, s.options()); err != nil {
		return err
	}

	return s.close()
}

func printTree(ctx context.Context, out io.Writer, path string, opts []search.Option) error {
	f, err := problemfile.Load(path)
	if err != nil {
		return err
	}
	entries, outcome, err := f.Tree(ctx, opts...)
	if err != nil {
		return fmt.Errorf("tree %s: %w", path, err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tCOST\tPARENT")
	for _, e := range entries {
		parent := e.Parent
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(tw, "%s\t%g\t%s\n", e.State, e.Cost, parent)
	}
	_ = tw.Flush()
	if outcome != search.NoPath {
		// an exhaustive run only ends with NoPath when it covered everything
		fmt.Fprintf(out, "partial tree: search %s\n", outcome)
	}

	return nil
}
