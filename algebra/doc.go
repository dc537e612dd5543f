// Package algebra defines the cost algebra consumed by the lvsearch engine:
// how two costs accumulate along a path and how two costs are ordered.
//
// Overview:
//
//   - An Algebra[T] supplies Combine (accumulation), Compare (total order)
//     and Identity (the cost of the empty path).
//   - The search engine never inspects T directly. Every accumulation and
//     every comparison goes through the algebra, so the same engine runs
//     uniform-cost search over int64 distances, minimax (bottleneck) paths,
//     or most-probable paths over float64 probabilities.
//
// Built-in algebras:
//
//   - Additive[N]:   a+b, ascending order, identity 0 (classic shortest paths).
//   - Bottleneck[N]: max(a,b), ascending order, identity = supplied floor.
//   - Probability:   a*b over float64, descending order, identity 1.
//   - New[T]:        function-table algebra for any other semiring.
//
// Caller responsibility:
//
//	The engine makes no assumption beyond Combine and Compare being
//	consistent with each other. Optimality guarantees hold only when
//	Combine is associative and monotone non-decreasing with respect to
//	Compare (a ≼ Combine(a, b) for every step cost b). A mis-supplied
//	algebra produces non-optimal paths; it is never detected at runtime.
//
// Example:
//
//	alg := algebra.Additive[int64]()
//	alg.Combine(2, 3)  // 5
//	alg.Compare(2, 3)  // -1 (2 is better)
//	alg.Identity()     // 0
package algebra
