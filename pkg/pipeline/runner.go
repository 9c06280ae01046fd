package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shuffleset/pkg/library"
	"github.com/matzehuels/shuffleset/pkg/materialize"
	"github.com/matzehuels/shuffleset/pkg/observability"
	"github.com/matzehuels/shuffleset/pkg/perm"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

// Runner executes shuffle runs.
//
// The Runner keeps no per-run state: every Execute call owns its own item
// set and fingerprint set. Hooks default to the globally registered ones.
type Runner struct {
	Logger     *log.Logger
	RunHooks   observability.RunHooks
	WriteHooks observability.WriteHooks
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger:     logger,
		RunHooks:   observability.Run(),
		WriteHooks: observability.Write(),
	}
}

// Execute performs a complete run.
//
// The returned Result is non-nil whenever the input could be scanned, also
// when the run fails later; it then describes the orderings written before
// the failure. An exhausted sampler aborts the run with an error matching
// errors.ErrCodeExhaustedRetries. Cancelling ctx stops the run before the
// next ordering or track copy.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts.SetDefaults()
	r.ensureDefaults()
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	start := time.Now()
	runID := uuid.NewString()
	logger = logger.With("run", runID[:8])

	// Stage 1: Scan
	inputDir, err := library.ResolveDir(opts.InputDir)
	if err != nil {
		return nil, err
	}
	items, err := library.Scan(inputDir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	result = &Result{
		RunID:    runID,
		InputDir: inputDir,
		Tracks:   slices.Clone(items),
	}
	logger.Info("scanned input", "dir", inputDir, "tracks", len(items))

	// Stage 2: Budget
	count := opts.Count
	if count > opts.MaxCount {
		logger.Warnf("That's a lot of permutations (%d), limiting to %d...", count, opts.MaxCount)
		count = opts.MaxCount
		result.Limited = true
	}
	budget, err := perm.ComputeBudget(len(items), count)
	if err != nil {
		return result, err
	}
	result.Budget = budget
	if budget.Truncated {
		logger.Warnf("Limiting permutations to %d possible unique orderings!", budget.Effective)
	}
	if valid, ok := shuffle.CountValid(items); ok {
		result.ValidOrderings, result.ValidKnown = valid, true
		logger.Debug("counted valid orderings", "valid", valid, "total", budget.Max)
		if valid < budget.Effective {
			logger.Warnf("Only %d orderings avoid consecutive tracks by the same artist, the run will stop after them", valid)
		}
	}

	root, err := materialize.ResolveRoot(opts.OutputRoot, inputDir)
	if err != nil {
		return result, err
	}
	if !opts.DryRun {
		if root, err = materialize.EnsureRoot(root); err != nil {
			return result, err
		}
	}
	result.OutputRoot = root

	// Stage 3: Generate
	r.RunHooks.OnRunStart(ctx, runID, len(items), budget.Effective)
	defer func() {
		result.Elapsed = time.Since(start)
		r.RunHooks.OnRunComplete(ctx, runID, len(result.Orderings), result.Elapsed, err)
	}()

	logger.Info("generating orderings",
		"orderings", budget.Effective,
		"tracks", len(items),
		"output", root)

	err = r.generate(ctx, logger, opts, items, budget.Effective, result)
	return result, err
}

// generate produces orderings 1..n into result. It owns the fingerprint set
// for the run and shuffles items in place.
func (r *Runner) generate(ctx context.Context, logger *log.Logger, opts Options, items []shuffle.Item, n int, result *Result) error {
	samplerOpts := []shuffle.Option{shuffle.WithMaxAttempts(opts.MaxAttempts)}
	if opts.Seed != 0 {
		samplerOpts = append(samplerOpts, shuffle.WithSeed(opts.Seed))
	}
	sampler := shuffle.NewSampler(samplerOpts...)
	var seen shuffle.FingerprintSet

	writer := &materialize.Writer{
		Layout: materialize.Layout{
			Root:         result.OutputRoot,
			FolderPrefix: opts.FolderPrefix,
			TrackLabel:   opts.TrackLabel,
			Orderings:    n,
			Tracks:       len(items),
		},
		Force:  opts.Force,
		DryRun: opts.DryRun,
	}

	for number := 1; number <= n; number++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		folder, status, err := writer.Prepare(number)
		if err != nil {
			return err
		}
		r.report(opts, Progress{Stage: StageOrdering, Number: number, Folder: folder})

		switch status {
		case materialize.StatusSkipped:
			logger.Warnf("Skipping already existing output dir: '%s'", folder)
			result.Skipped = append(result.Skipped, folder)
			r.RunHooks.OnOrderingSkipped(ctx, number, folder)
			r.report(opts, Progress{Stage: StageSkip, Number: number, Folder: folder})
			continue
		case materialize.StatusReplaced:
			logger.Warnf("Deleting existing output directory '%s'", folder)
			r.WriteHooks.OnFolderReplaced(ctx, folder)
			r.report(opts, Progress{Stage: StageReplace, Number: number, Folder: folder})
		}

		ordering, err := sampler.Sample(items, &seen)
		if err != nil {
			return err
		}
		r.RunHooks.OnOrderingAccepted(ctx, number, ordering.Attempts)
		logger.Debug("accepted ordering",
			"number", number,
			"attempts", ordering.Attempts,
			"fingerprint", fmt.Sprintf("%016x", uint64(ordering.Fingerprint)))

		writer.OnCopy = func(dst string) {
			r.report(opts, Progress{Stage: StageCopy, Number: number, Folder: folder, Track: dst})
		}
		writeStart := time.Now()
		_, err = writer.Write(ctx, number, ordering.Items)
		r.WriteHooks.OnFolderWritten(ctx, folder, len(ordering.Items), time.Since(writeStart), err)
		if err != nil {
			return err
		}

		result.Orderings = append(result.Orderings, Generated{
			Number:   number,
			Folder:   folder,
			Ordering: ordering,
		})
		r.report(opts, Progress{Stage: StageWritten, Number: number, Folder: folder})
	}
	return nil
}

func (r *Runner) ensureDefaults() {
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	if r.RunHooks == nil {
		r.RunHooks = observability.NoopRunHooks{}
	}
	if r.WriteHooks == nil {
		r.WriteHooks = observability.NoopWriteHooks{}
	}
}

func (r *Runner) report(opts Options, p Progress) {
	if opts.OnProgress != nil {
		opts.OnProgress(p)
	}
}
