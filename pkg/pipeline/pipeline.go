// Package pipeline runs a complete shuffle job: scan the input directory,
// decide how many orderings to produce, sample each one and write it out.
//
// # Architecture
//
// A run has three stages:
//
//  1. Scan: collect the audio tracks of the input directory (package library)
//  2. Budget: cap the request by the maximum count and by n! (package perm)
//  3. Generate: for every ordering number, apply the overwrite policy, sample a
//     unique valid ordering (package shuffle) and copy it (package materialize)
//
// The fingerprint set and the item slice live for exactly one Execute call.
// Nothing is remembered between runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    InputDir: "/music/impro",
//	    Count:    5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Orderings), "shuffle sets in", result.OutputRoot)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shuffleset/pkg/errors"
	"github.com/matzehuels/shuffleset/pkg/library"
	"github.com/matzehuels/shuffleset/pkg/materialize"
	"github.com/matzehuels/shuffleset/pkg/perm"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultCount is the number of orderings when none is requested.
	DefaultCount = 1

	// DefaultMaxCount caps the requested count. Larger requests are limited
	// with a warning.
	DefaultMaxCount = 99
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a shuffle run.
type Options struct {
	// Input
	InputDir   string   `json:"input_dir"`
	Extensions []string `json:"extensions,omitempty"`

	// Orderings
	Count       int    `json:"count"`
	MaxCount    int    `json:"max_count,omitempty"`
	MaxAttempts int    `json:"max_attempts,omitempty"`
	Seed        uint64 `json:"seed,omitempty"`

	// Output
	OutputRoot   string `json:"output,omitempty"`
	FolderPrefix string `json:"folder_prefix,omitempty"`
	TrackLabel   string `json:"track_label,omitempty"`
	Force        bool   `json:"force,omitempty"`
	DryRun       bool   `json:"dry_run,omitempty"`

	// Runtime options (not serialized)
	Logger     *log.Logger    `json:"-"`
	OnProgress func(Progress) `json:"-"`
}

// Validate checks option values that do not depend on the file system.
func (o *Options) Validate() error {
	if err := errors.ValidateCount(o.Count); err != nil {
		return err
	}
	if o.MaxCount < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max count must be non-negative, got %d", o.MaxCount)
	}
	if o.MaxAttempts < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max attempts must be non-negative, got %d", o.MaxAttempts)
	}
	if o.FolderPrefix != "" {
		if err := errors.ValidateLabel("folder prefix", o.FolderPrefix); err != nil {
			return err
		}
	}
	if o.TrackLabel != "" {
		if err := errors.ValidateLabel("track label", o.TrackLabel); err != nil {
			return err
		}
	}
	for _, ext := range o.Extensions {
		if err := errors.ValidateExtension(ext); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills zero values with defaults.
func (o *Options) SetDefaults() {
	if o.MaxCount == 0 {
		o.MaxCount = DefaultMaxCount
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = shuffle.DefaultMaxAttempts
	}
	if len(o.Extensions) == 0 {
		o.Extensions = library.DefaultExtensions
	}
	if o.FolderPrefix == "" {
		o.FolderPrefix = materialize.DefaultFolderPrefix
	}
	if o.TrackLabel == "" {
		o.TrackLabel = materialize.DefaultTrackLabel
	}
}

// =============================================================================
// Progress
// =============================================================================

// Stage identifies a progress event.
type Stage string

const (
	StageOrdering Stage = "ordering" // an ordering number is about to be produced
	StageReplace  Stage = "replace"  // an existing folder was removed
	StageSkip     Stage = "skip"     // an existing folder was kept, number skipped
	StageCopy     Stage = "copy"     // one track was copied
	StageWritten  Stage = "written"  // an ordering is completely on disk
)

// Progress is reported through Options.OnProgress while a run executes.
type Progress struct {
	Stage  Stage
	Number int    // ordering number, 1-based
	Folder string // output folder of the ordering
	Track  string // destination path, StageCopy only
}

// =============================================================================
// Result
// =============================================================================

// Result describes a finished (or aborted) run.
type Result struct {
	// RunID identifies the run in logs and hooks.
	RunID string

	// InputDir and OutputRoot are the resolved absolute directories.
	InputDir   string
	OutputRoot string

	// Tracks is the sorted input set.
	Tracks []shuffle.Item

	// Limited is set when the request exceeded Options.MaxCount.
	Limited bool

	// Budget is the outcome of the permutation budget check.
	Budget perm.Budget

	// ValidOrderings is the exact number of artist-valid orderings, known
	// only for small track sets (ValidKnown).
	ValidOrderings int
	ValidKnown     bool

	// Orderings lists the generated orderings in number order.
	Orderings []Generated

	// Skipped lists folders left untouched because they already existed.
	Skipped []string

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Generated is one ordering of a run together with its output folder.
type Generated struct {
	Number   int
	Folder   string
	Ordering shuffle.Ordering
}
