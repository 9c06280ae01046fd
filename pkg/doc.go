// Package pkg provides the libraries behind the shuffleset command.
//
// # Overview
//
// shuffleset copies a folder of audio tracks into numbered "shuffle set"
// folders. Each folder holds the same tracks in a different random order,
// and no two consecutive tracks share an artist.
//
// The packages, from the core outwards:
//
//  1. [perm] - factorials, the permutation budget, exhaustive enumeration
//  2. [shuffle] - tracks, artist keys, fingerprints and the unique ordering sampler
//  3. [library] - scanning an input directory for audio files
//  4. [materialize] - output folder naming and copying
//  5. [pipeline] - one complete run (scan, budget, generate)
//
// [errors] carries the coded errors all of them return, [observability]
// the optional run hooks and [buildinfo] the version.
//
// # Data Flow
//
//	input directory
//	       ↓
//	  [library] Scan (sorted, duplicate-free tracks)
//	       ↓
//	  [perm] ComputeBudget (min(count, n!))
//	       ↓
//	  [shuffle] Sampler.Sample (per ordering, shared fingerprint set)
//	       ↓
//	  [materialize] Writer (one folder per ordering)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    InputDir: "/music/impro",
//	    Count:    3,
//	})
//
// [perm]: github.com/matzehuels/shuffleset/pkg/perm
// [shuffle]: github.com/matzehuels/shuffleset/pkg/shuffle
// [library]: github.com/matzehuels/shuffleset/pkg/library
// [materialize]: github.com/matzehuels/shuffleset/pkg/materialize
// [pipeline]: github.com/matzehuels/shuffleset/pkg/pipeline
// [errors]: github.com/matzehuels/shuffleset/pkg/errors
// [observability]: github.com/matzehuels/shuffleset/pkg/observability
// [buildinfo]: github.com/matzehuels/shuffleset/pkg/buildinfo
package pkg
