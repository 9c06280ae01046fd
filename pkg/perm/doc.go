// Package perm provides permutation arithmetic for shuffle runs.
//
// The central operation is [ComputeBudget], which decides how many orderings
// a run will actually attempt. For small item sets the request is capped by
// n!, the number of distinct permutations that exist at all. For larger
// sets the factorial is not computed and the request passes through
// unchanged; the sampler's retry ceiling is the termination bound there.
//
// The package also provides [Factorial], [Seq] and [Generate] (Heap's
// algorithm) for callers that need the full permutation space of a small
// set, such as exact counting of constraint-valid orderings.
package perm
