package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shuffleset/internal/config"
	"github.com/matzehuels/shuffleset/pkg/errors"
	"github.com/matzehuels/shuffleset/pkg/library"
	"github.com/matzehuels/shuffleset/pkg/pipeline"
)

// shuffleOpts holds the command-line flags of the root command.
// Zero values mean "use the config file".
type shuffleOpts struct {
	configPath  string // config file, default location when empty
	output      string // output root, parent of the input dir when empty
	force       bool   // replace existing shuffle set folders
	seed        uint64 // reproducible orderings when non-zero
	maxAttempts int    // sampler retry ceiling per ordering
	dryRun      bool   // sample without copying
}

// shuffleCommand creates the command that generates shuffle sets.
func (c *CLI) shuffleCommand() *cobra.Command {
	var opts shuffleOpts

	cmd := &cobra.Command{
		Use:   "shuffleset <input-dir> [count]",
		Short: "Create shuffled copies of an audio folder",
		Long: `Shuffleset copies the audio files of a folder into numbered folders, each
holding its own random order of the tracks. No two consecutive tracks share an
artist (the part of the file name before " - "), and no order repeats within a run.`,
		Example: `  shuffleset ~/Music/impro 5
  shuffleset ~/Music/impro 3 --output ~/Desktop/sets --force
  shuffleset ~/Music/impro 10 --dry-run --seed 42`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts, err := c.buildOptions(cmd, args, &opts)
			if err != nil {
				return err
			}
			return c.runShuffle(withLogger(cmd.Context(), c.Logger), runOpts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shuffleset/config.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output root (default: parent of the input directory)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing output folders")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible orderings (0 = random)")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "retry ceiling per ordering (default 1000)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "sample and report orderings without copying")

	return cmd
}

// buildOptions merges config file values, positional arguments and flags.
// Flags win over the config file when they were set explicitly.
func (c *CLI) buildOptions(cmd *cobra.Command, args []string, opts *shuffleOpts) (pipeline.Options, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	runOpts := cfg.Options(args[0])

	if len(args) > 1 {
		count, err := parseCount(args[1])
		if err != nil {
			return runOpts, err
		}
		runOpts.Count = count
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		if strings.TrimSpace(opts.output) == "" {
			return runOpts, errors.New(errors.ErrCodeInvalidPath, "empty output path")
		}
		runOpts.OutputRoot = opts.output
	}
	if flags.Changed("force") {
		runOpts.Force = opts.force
	}
	if flags.Changed("max-attempts") {
		if opts.maxAttempts < 1 {
			return runOpts, errors.New(errors.ErrCodeInvalidInput, "--max-attempts must be positive, got %d", opts.maxAttempts)
		}
		runOpts.MaxAttempts = opts.maxAttempts
	}
	runOpts.Seed = opts.seed
	runOpts.DryRun = opts.dryRun
	runOpts.Logger = c.Logger
	return runOpts, nil
}

// loadConfig reads the config file. An explicitly given file must exist.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		def, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		return config.Load(def)
	}
	if _, err := os.Stat(path); err != nil {
		return config.Config{}, errors.New(errors.ErrCodeInvalidPath, "config file does not exist or is not accessible: '%s'", path)
	}
	return config.Load(path)
}

// parseCount parses the positional count argument.
func parseCount(s string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || count < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "count must be a non-negative integer, got '%s'", s)
	}
	return count, nil
}

// runShuffle executes a run and prints its summary.
func (c *CLI) runShuffle(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if c.verbose() {
		if err := listInput(logger, opts); err != nil {
			return err
		}
	}

	display := newRunDisplay(ctx, logger, c.verbose() || opts.DryRun)
	opts.OnProgress = display.handle
	result, err := c.newRunner().Execute(ctx, opts)
	display.finish(err)

	if result != nil {
		printSummary(result, opts.DryRun)
	}
	if errors.Is(err, errors.ErrCodeExhaustedRetries) && canRetry(result) {
		printNewline()
		printNextStep("Allow more shuffles per ordering", fmt.Sprintf("--max-attempts %d", opts.MaxAttempts*10))
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d shuffle sets", len(result.Orderings)))
	return nil
}

// listInput prints the tracks a run will use, with their artist keys.
func listInput(logger *log.Logger, opts pipeline.Options) error {
	dir, err := library.ResolveDir(opts.InputDir)
	if err != nil {
		return err
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = library.DefaultExtensions
	}
	tracks, err := library.Scan(dir, exts)
	if err != nil {
		return err
	}
	logger.Debug("input directory", "dir", dir, "extensions", strings.Join(exts, ","))
	printTracks(tracks)
	return nil
}

// canRetry reports whether more sampler attempts could find further orderings.
// For small sets the exact count of valid orderings settles it.
func canRetry(r *pipeline.Result) bool {
	if r == nil {
		return false
	}
	return !r.ValidKnown || len(r.Orderings) < r.ValidOrderings
}
