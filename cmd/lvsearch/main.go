// lvsearch solves YAML search problems from the command line.
//
// Usage:
//
//	lvsearch solve -f problem.yaml [--algorithm dijkstra|astar|bfs] [--max-expansions N] [--timeout D]
//	lvsearch batch -f a.yaml -f b.yaml [--parallel N]
//	lvsearch tree  -f problem.yaml
//
// Global flags: --log-level debug|info|warn|error, --no-color, --metrics-out FILE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
