package search

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilProblem indicates that a nil problem was passed to New.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilAlgebra indicates that the problem returned a nil cost algebra.
	ErrNilAlgebra = errors.New("search: problem algebra is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrHookAborted wraps an error returned by an OnExpand hook.
	ErrHookAborted = errors.New("search: aborted by hook")

	// ErrInProgress is returned by Stepper.Result before the search finished.
	ErrInProgress = errors.New("search: search still in progress")
)

// Outcome is the terminal state of a search run.
type Outcome int

const (
	// Found: a goal state was popped; Result.Path holds the path.
	Found Outcome = iota

	// NoPath: the frontier emptied without satisfying the goal test.
	// For goal-less searches this is the normal completion.
	NoPath

	// Cancelled: the context was done or the Stop signal fired.
	Cancelled

	// BudgetExhausted: MaxExpansions or Timeout was reached.
	BudgetExhausted
)

// String returns the lowercase, hyphenated outcome name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPath:
		return "no-path"
	case Cancelled:
		return "cancelled"
	case BudgetExhausted:
		return "budget-exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats counts the work done by one search run.
type Stats struct {
	Expanded    int           // states finalized and expanded
	Generated   int           // transitions enumerated
	Improved    int           // known states whose cost was strictly improved
	MaxFrontier int           // largest frontier size observed
	Duration    time.Duration // wall-clock duration of the run
}

// Report is the type-erased summary of a run handed to WithReport callbacks.
type Report struct {
	RunID   string
	Label   string
	Outcome Outcome
	PathLen int // number of states on the path, 0 unless Found
	Stats   Stats
}

// Options configures a Searcher. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Label names the strategy in logs, spans and metrics
	// ("best-first", "dijkstra", "astar", ...).
	Label string

	// MaxExpansions, if > 0, stops the search after that many expansions.
	MaxExpansions int

	// Timeout, if > 0, stops the search once the wall-clock budget is spent.
	Timeout time.Duration

	// Stop is polled at the top of every iteration; true cancels the search.
	Stop func() bool

	// Logger receives one record per run.
	Logger *slog.Logger

	// TracerProvider and MeterProvider default to the otel globals.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// OnReport is called once per finished run.
	OnReport func(Report)

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments. Invalid
// values are recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Label "best-first"
//   - no expansion or time budget
//   - no stop signal
//   - slog.Default() logger
//   - otel global tracer and meter providers
//   - no report callback.
func DefaultOptions() Options {
	return Options{
		Label:          "best-first",
		Logger:         slog.Default(),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
}

// WithLabel sets the strategy label.
func WithLabel(label string) Option {
	return func(o *Options) {
		if label != "" {
			o.Label = label
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  budget of n expansions
//	n == 0: explicit no budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithTimeout bounds the wall-clock time of a run. Reaching it yields
// BudgetExhausted, unlike a context deadline which yields Cancelled.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Timeout cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithStop registers a cooperative stop signal.
func WithStop(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Stop = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider overrides the otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the otel meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// WithReport registers a callback receiving the Report of every run.
func WithReport(fn func(Report)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReport = fn
		}
	}
}
