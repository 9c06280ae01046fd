// Package shuffle generates unique random track orderings in which no two
// adjacent tracks share an artist.
//
// # Overview
//
// A [Sampler] repeatedly shuffles an item slice in place until the result
// passes the adjacency check ([HasAdjacentArtist]) and its fingerprint
// ([FingerprintOf]) is not yet in the caller's [FingerprintSet]. Each
// accepted ordering is recorded in the set, so repeated calls within one run
// never return the same ordering twice.
//
// Sampling is bounded: after [DefaultMaxAttempts] rejected shuffles (or the
// ceiling set with [WithMaxAttempts]) Sample fails with an error matching
// [ErrExhaustedRetries]. That happens when the constraint space is drained,
// for example when every track is by the same artist, and is fatal for the
// run.
//
// # Artist Keys
//
// Track files are expected to be named "<artist> - <title>.<ext>". The
// artist key is the part of the base name before the first " - ". Names
// without the separator use the whole base name minus its extension, so such
// tracks only clash with a file of the same stem. Comparison is exact and
// case-sensitive.
//
// # Usage
//
//	items := []shuffle.Item{{Path: "B - T1.mp3"}, {Path: "A - T1.mp3"}, {Path: "A - T2.mp3"}}
//	sampler := shuffle.NewSampler()
//	var seen shuffle.FingerprintSet
//	for range 2 {
//	    ordering, err := sampler.Sample(items, &seen)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ordering.Names())
//	}
//
// A Sampler is not safe for concurrent use. The item slice and fingerprint
// set belong to the caller for the whole run and must not be shared.
package shuffle
