package shuffle

import (
	stderrors "errors"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/shuffleset/pkg/errors"
)

// DefaultMaxAttempts is the number of rejected shuffles Sample tolerates
// before giving up.
const DefaultMaxAttempts = 1000

// ErrExhaustedRetries is matched (via errors.Is) by the error Sample returns
// when no new valid ordering was found within the retry ceiling.
var ErrExhaustedRetries = stderrors.New("exhausted retries")

// Ordering is one accepted arrangement of the run's items.
type Ordering struct {
	// Items holds the tracks in play order. It is a copy, independent of
	// the slice passed to Sample.
	Items []Item

	// Fingerprint is the digest recorded in the fingerprint set.
	Fingerprint Fingerprint

	// Attempts is the number of shuffles it took, including the accepted one.
	Attempts int
}

// Names returns the base names of the ordering's items in play order.
func (o Ordering) Names() []string {
	names := make([]string, len(o.Items))
	for i, it := range o.Items {
		names[i] = it.Name()
	}
	return names
}

// Sampler draws orderings that satisfy the adjacency constraint and have not
// been produced before in the same fingerprint set.
type Sampler struct {
	rng         *rand.Rand
	maxAttempts int
}

// Option configures a [Sampler].
type Option func(*Sampler)

// WithSeed makes the sampler's shuffles reproducible. The same seed, items
// and call sequence yield the same orderings.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
}

// WithMaxAttempts sets the retry ceiling. Values <= 0 keep the default.
func WithMaxAttempts(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewSampler creates a sampler. Without [WithSeed] it draws from a randomly
// seeded source.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// MaxAttempts returns the sampler's retry ceiling.
func (s *Sampler) MaxAttempts() int {
	return s.maxAttempts
}

// Sample shuffles items in place until the sequence has no adjacent tracks
// by the same artist and its fingerprint is not in seen, records the
// fingerprint and returns the ordering.
//
// Each rejected shuffle counts as one attempt. Once more than MaxAttempts
// shuffles were rejected, Sample returns an [errors.ErrCodeExhaustedRetries]
// error wrapping [ErrExhaustedRetries] and leaves seen unchanged. items is
// left in its last shuffled order either way.
func (s *Sampler) Sample(items []Item, seen *FingerprintSet) (Ordering, error) {
	if seen == nil {
		return Ordering{}, errors.New(errors.ErrCodePrecondition, "sample needs a fingerprint set")
	}

	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	rejected := 0
	for {
		s.rng.Shuffle(len(items), swap)
		fp := FingerprintOf(items)
		if !HasAdjacentArtist(items) && !seen.Contains(fp) {
			seen.Add(fp)
			return Ordering{
				Items:       slices.Clone(items),
				Fingerprint: fp,
				Attempts:    rejected + 1,
			}, nil
		}

		rejected++
		if rejected > s.maxAttempts {
			return Ordering{}, errors.Wrap(errors.ErrCodeExhaustedRetries, ErrExhaustedRetries,
				"failed to find a unique valid ordering of %d tracks after %d attempts", len(items), rejected)
		}
	}
}
