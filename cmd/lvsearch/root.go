package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/problemfile"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/search"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel   string
	noColor    bool
	metricsOut string
}

var rootCmd = &cobra.Command{
	Use:   "lvsearch",
	Short: "Best-first search over graph and grid problems",
	Long: "lvsearch loads search problems from YAML files and solves them with\n" +
		"Dijkstra, A* or breadth-first search.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.BoolVar(&rootFlags.noColor, "no-color", false, "Disable colored log output")
	f.StringVar(&rootFlags.metricsOut, "metrics-out", "", "Write Prometheus metrics of the runs to this file")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.Version = version
}

// searchFlags are the engine settings shared by solve and batch.
type searchFlags struct {
	algorithm     string
	maxExpansions int
	timeout       time.Duration
}

func addSearchFlags(cmd *cobra.Command, sf *searchFlags) {
	f := cmd.Flags()
	f.StringVar(&sf.algorithm, "algorithm", "", "Override the file's algorithm: dijkstra, astar, bfs")
	f.IntVar(&sf.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 keeps the file limit)")
	f.DurationVar(&sf.timeout, "timeout", 0, "Stop after this wall-clock time (0 keeps the file limit)")
}

// apply overrides the file's algorithm and returns the engine options.
func (sf searchFlags) apply(f *problemfile.File) ([]search.Option, error) {
	if sf.algorithm != "" {
		f.Algorithm = problemfile.Algorithm(sf.algorithm)
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	if sf.maxExpansions < 0 || sf.timeout < 0 {
		return nil, errors.New("limits must not be negative")
	}

	var opts []search.Option
	if sf.maxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(sf.maxExpansions))
	}
	if sf.timeout > 0 {
		opts = append(opts, search.WithTimeout(sf.timeout))
	}

	return opts, nil
}

// session carries what every command needs to run searches: the logger and
// the metrics registry the runs report to.
type session struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newSession(cmd *cobra.Command) (*session, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), rootFlags.logLevel, rootFlags.noColor)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()

	return &session{logger: logger, registry: reg, recorder: metrics.NewRecorder(reg)}, nil
}

// options are the engine options every run of the session gets.
func (s *session) options() []search.Option {
	return []search.Option{search.WithLogger(s.logger), s.recorder.Option()}
}

// close flushes metrics to --metrics-out, if set.
func (s *session) close() error {
	if rootFlags.metricsOut == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(rootFlags.metricsOut, s.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	s.logger.Debug("metrics written", slog.String("path", rootFlags.metricsOut))

	return nil
}
