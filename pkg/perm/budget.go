package perm

import (
	"github.com/matzehuels/shuffleset/pkg/errors"
)

// MaxExactItems is the largest item count for which the budget is capped by
// the exact factorial. 20! is the largest factorial that fits in a uint64.
const MaxExactItems = 20

// Budget is the outcome of [ComputeBudget].
type Budget struct {
	// Requested is the count the caller asked for.
	Requested int

	// Effective is the number of orderings the run will attempt.
	Effective int

	// Max is n! when it was computed, 0 when the item count exceeds
	// MaxExactItems and no exact ceiling applies.
	Max uint64

	// Truncated reports whether Effective is smaller than Requested.
	Truncated bool
}

// Exact reports whether the budget was checked against an exact
// permutation count.
func (b Budget) Exact() bool {
	return b.Max > 0
}

// ComputeBudget returns how many orderings of itemCount items a run can
// produce when requested orderings were asked for.
//
// For itemCount <= MaxExactItems the result is min(requested, itemCount!)
// and Truncated is set when the request exceeded the factorial. Above that
// the request is returned unchanged.
//
// itemCount < 1 and requested < 0 are caller bugs and return an
// [errors.ErrCodePrecondition] error.
func ComputeBudget(itemCount, requested int) (Budget, error) {
	if itemCount < 1 {
		return Budget{}, errors.New(errors.ErrCodePrecondition, "budget needs at least one item, got %d", itemCount)
	}
	if requested < 0 {
		return Budget{}, errors.New(errors.ErrCodePrecondition, "requested count must be non-negative, got %d", requested)
	}

	b := Budget{Requested: requested, Effective: requested}
	if itemCount > MaxExactItems {
		return b, nil
	}

	b.Max = Factorial(itemCount)
	if uint64(requested) > b.Max {
		b.Effective = int(b.Max)
		b.Truncated = true
	}
	return b, nil
}
