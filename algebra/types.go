package algebra

import (
	"cmp"
	"errors"

	"golang.org/x/exp/constraints"
)

// Algebra is the pair of operations (combine, compare) used to accumulate
// and order costs, plus the identity element of Combine.
//
// Compare follows the cmp.Compare convention with "better" meaning "smaller":
//
//	Compare(a, b) < 0  – a is better than b (ordered first)
//	Compare(a, b) == 0 – a and b are equivalent
//	Compare(a, b) > 0  – a is worse than b
type Algebra[T any] interface {
	// Combine accumulates b onto a (e.g. a+b for additive costs).
	Combine(a, b T) T

	// Compare orders two costs; see the type documentation.
	Compare(a, b T) int

	// Identity is the cost of the empty path, used for the root node.
	Identity() T
}

// ErrNilOperation is raised (via panic) when New receives a nil function.
var ErrNilOperation = errors.New("algebra: combine and compare must be non-nil")

// Number is the set of built-in numeric types usable with Additive.
type Number interface {
	constraints.Integer | constraints.Float
}

// Less reports whether a is strictly better than b under alg.
func Less[T any](alg Algebra[T], a, b T) bool { return alg.Compare(a, b) < 0 }

// Equal reports whether a and b are equivalent under alg.
func Equal[T any](alg Algebra[T], a, b T) bool { return alg.Compare(a, b) == 0 }

// Min returns the better of a and b under alg. On ties a is returned.
func Min[T any](alg Algebra[T], a, b T) T {
	if alg.Compare(b, a) < 0 {
		return b
	}

	return a
}

// Sum folds costs onto the identity with Combine, left to right.
func Sum[T any](alg Algebra[T], costs ...T) T {
	acc := alg.Identity()
	for _, c := range costs {
		acc = alg.Combine(acc, c)
	}

	return acc
}

// additive is addition over a numeric type with ascending order.
type additive[N Number] struct{}

func (additive[N]) Combine(a, b N) N   { return a + b }
func (additive[N]) Compare(a, b N) int { return cmp.Compare(a, b) }
func (additive[N]) Identity() N {
	var zero N

	return zero
}

// Additive returns the classic shortest-path algebra: a+b, smaller is
// better, identity 0. For floating-point N, NaN orders before every
// other value (cmp.Compare semantics); keep NaN out of cost functions.
func Additive[N Number]() Algebra[N] { return additive[N]{} }

// bottleneck keeps the worst single step seen along a path.
type bottleneck[N cmp.Ordered] struct{ floor N }

func (bottleneck[N]) Combine(a, b N) N   { return max(a, b) }
func (bottleneck[N]) Compare(a, b N) int { return cmp.Compare(a, b) }
func (b bottleneck[N]) Identity() N      { return b.floor }

// Bottleneck returns the minimax algebra: the cost of a path is its largest
// step, and paths with a smaller largest step are better. floor must be no
// greater than any step cost (0 for non-negative costs).
func Bottleneck[N cmp.Ordered](floor N) Algebra[N] { return bottleneck[N]{floor: floor} }

// probability multiplies independent success probabilities.
type probability struct{}

func (probability) Combine(a, b float64) float64 { return a * b }
func (probability) Compare(a, b float64) int     { return cmp.Compare(b, a) }
func (probability) Identity() float64            { return 1 }

// Probability returns the most-reliable-path algebra over float64: costs are
// step probabilities in [0, 1], accumulated by multiplication, and a higher
// probability is better. A heuristic under this algebra must never
// under-estimate the remaining probability (1 is always admissible).
func Probability() Algebra[float64] { return probability{} }

// funcs is a function-table algebra.
type funcs[T any] struct {
	combine  func(a, b T) T
	compare  func(a, b T) int
	identity T
}

func (f funcs[T]) Combine(a, b T) T   { return f.combine(a, b) }
func (f funcs[T]) Compare(a, b T) int { return f.compare(a, b) }
func (f funcs[T]) Identity() T        { return f.identity }

// New builds an Algebra from plain functions.
// It panics with ErrNilOperation if combine or compare is nil.
func New[T any](combine func(a, b T) T, compare func(a, b T) int, identity T) Algebra[T] {
	if combine == nil || compare == nil {
		panic(ErrNilOperation.Error())
	}

	return funcs[T]{combine: combine, compare: compare, identity: identity}
}
