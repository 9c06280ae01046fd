package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shuffleset/pkg/errors"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

func TestExecuteScenario(t *testing.T) {
	input := newInput(t, "B - T1.mp3", "A - T1.mp3", "A - T2.mp3", "cover.jpg")
	output := t.TempDir()

	var copies int
	result, err := newTestRunner().Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: output,
		Count:      2,
		OnProgress: func(p Progress) {
			if p.Stage == StageCopy {
				copies++
			}
		},
	})
	require.NoError(t, err)

	assert.Len(t, result.Tracks, 3)
	assert.Equal(t, 2, result.Budget.Effective)
	assert.False(t, result.Budget.Truncated)
	assert.True(t, result.ValidKnown)
	assert.Equal(t, 2, result.ValidOrderings)
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Orderings, 2)
	assert.Equal(t, 6, copies)
	assert.NotEqual(t, result.Orderings[0].Ordering.Fingerprint, result.Orderings[1].Ordering.Fingerprint)

	for i, g := range result.Orderings {
		assert.Equal(t, i+1, g.Number)
		assert.Equal(t, filepath.Join(result.OutputRoot, "FDO Impro "+string(rune('1'+i))), g.Folder)

		names := listDir(t, g.Folder)
		require.Len(t, names, 3)
		var played []shuffle.Item
		for pos, name := range names {
			prefix := string(rune('1'+pos)) + " FDO impro - "
			require.True(t, strings.HasPrefix(name, prefix), "unexpected name %q", name)
			played = append(played, shuffle.Item{Path: strings.TrimPrefix(name, prefix)})
		}
		assert.False(t, shuffle.HasAdjacentArtist(played), "ordering %v", names)
		assert.Equal(t, "B - T1.mp3", played[1].Path)
	}
}

func TestExecuteDefaultOutputRoot(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3")

	result, err := newTestRunner().Execute(context.Background(), Options{InputDir: input, Count: 1})
	require.NoError(t, err)

	parent, err := filepath.EvalSymlinks(filepath.Dir(input))
	require.NoError(t, err)
	assert.Equal(t, parent, result.OutputRoot)
	assert.DirExists(t, filepath.Join(parent, "FDO Impro 1"))
}

func TestExecuteExhaustsAfterValidOrderings(t *testing.T) {
	input := newInput(t, "B - T1.mp3", "A - T1.mp3", "A - T2.mp3")

	result, err := newTestRunner().Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: t.TempDir(),
		Count:      10,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExhaustedRetries), "got %v", err)

	require.NotNil(t, result)
	assert.True(t, result.Budget.Truncated)
	assert.Equal(t, 6, result.Budget.Effective)
	assert.Len(t, result.Orderings, 2)
	assert.NoDirExists(t, filepath.Join(result.OutputRoot, "FDO Impro 3"))
}

func TestExecuteSameArtistFails(t *testing.T) {
	input := newInput(t, "X - A.mp3", "X - B.mp3")
	output := t.TempDir()

	result, err := newTestRunner().Execute(context.Background(), Options{
		InputDir:    input,
		OutputRoot:  output,
		Count:       1,
		MaxAttempts: 50,
	})
	assert.True(t, errors.Is(err, errors.ErrCodeExhaustedRetries), "got %v", err)
	assert.Empty(t, result.Orderings)
	assert.Empty(t, listDir(t, output))
}

func TestExecuteLimitsCount(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3", "C - 1.mp3", "D - 1.mp3", "E - 1.mp3")

	result, err := newTestRunner().Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: t.TempDir(),
		Count:      150,
		DryRun:     true,
	})
	require.NoError(t, err)

	assert.True(t, result.Limited)
	assert.Equal(t, DefaultMaxCount, result.Budget.Requested)
	assert.Equal(t, DefaultMaxCount, result.Budget.Effective)
	assert.Len(t, result.Orderings, DefaultMaxCount)
	assert.Equal(t, filepath.Join(result.OutputRoot, "FDO Impro 07"), result.Orderings[6].Folder)
	assert.Empty(t, listDir(t, result.OutputRoot), "dry run must not write")

	seen := make(map[shuffle.Fingerprint]bool)
	for _, g := range result.Orderings {
		assert.False(t, seen[g.Ordering.Fingerprint], "duplicate ordering %d", g.Number)
		seen[g.Ordering.Fingerprint] = true
	}
}

func TestExecuteSkipsExistingFolders(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3", "C - 1.mp3")
	output := t.TempDir()
	existing := filepath.Join(output, "FDO Impro 1")
	require.NoError(t, os.MkdirAll(existing, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "keep.txt"), nil, 0644))

	result, err := newTestRunner().Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: output,
		Count:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(result.OutputRoot, "FDO Impro 1")}, result.Skipped)
	require.Len(t, result.Orderings, 1)
	assert.Equal(t, 2, result.Orderings[0].Number)
	assert.Equal(t, []string{"keep.txt"}, listDir(t, existing))
}

func TestExecuteForceReplacesFolders(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3")
	output := t.TempDir()
	existing := filepath.Join(output, "FDO Impro 1")
	require.NoError(t, os.MkdirAll(existing, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "stale.mp3"), nil, 0644))

	hooks := &recordingHooks{}
	runner := newTestRunner()
	runner.WriteHooks = hooks

	result, err := runner.Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: output,
		Count:      1,
		Force:      true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Skipped)
	assert.Len(t, listDir(t, existing), 2)
	assert.NoFileExists(t, filepath.Join(existing, "stale.mp3"))
	assert.Equal(t, []string{filepath.Join(result.OutputRoot, "FDO Impro 1")}, hooks.replaced)
	assert.Equal(t, 1, hooks.written)
}

func TestExecuteHooks(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3", "C - 1.mp3")
	hooks := &recordingHooks{}
	runner := newTestRunner()
	runner.RunHooks = hooks

	result, err := runner.Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: t.TempDir(),
		Count:      3,
		DryRun:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, result.RunID, hooks.runID)
	assert.Equal(t, 3, hooks.tracks)
	assert.Equal(t, []int{1, 2, 3}, hooks.accepted)
	assert.Equal(t, 3, hooks.generated)
	assert.NoError(t, hooks.err)
}

func TestExecuteSeedReproducible(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "A - 2.mp3", "B - 1.mp3", "B - 2.mp3", "C - 1.mp3", "C - 2.mp3")

	run := func() []shuffle.Fingerprint {
		result, err := newTestRunner().Execute(context.Background(), Options{
			InputDir:   input,
			OutputRoot: t.TempDir(),
			Count:      5,
			Seed:       99,
			DryRun:     true,
		})
		require.NoError(t, err)
		var out []shuffle.Fingerprint
		for _, g := range result.Orderings {
			out = append(out, g.Ordering.Fingerprint)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestExecuteCancelled(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestRunner().Execute(ctx, Options{
		InputDir:   input,
		OutputRoot: t.TempDir(),
		Count:      1,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Orderings)
}

func TestExecuteInputErrors(t *testing.T) {
	empty := t.TempDir()
	_, err := newTestRunner().Execute(context.Background(), Options{InputDir: empty, Count: 1})
	assert.True(t, errors.Is(err, errors.ErrCodeNoAudioFiles), "got %v", err)

	_, err = newTestRunner().Execute(context.Background(), Options{InputDir: filepath.Join(empty, "missing"), Count: 1})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath), "got %v", err)

	_, err = newTestRunner().Execute(context.Background(), Options{InputDir: empty, Count: -2})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
}

func TestExecuteLogsWarnings(t *testing.T) {
	input := newInput(t, "A - 1.mp3", "B - 1.mp3")
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := NewRunner(logger).Execute(context.Background(), Options{
		InputDir:   input,
		OutputRoot: t.TempDir(),
		Count:      5,
		DryRun:     true,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Limiting permutations to 2 possible unique orderings!")
}

// =============================================================================
// Helpers
// =============================================================================

func newTestRunner() *Runner {
	return NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.DebugLevel}))
}

func newInput(t *testing.T, names ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.Mkdir(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	return dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

type recordingHooks struct {
	runID     string
	tracks    int
	accepted  []int
	generated int
	err       error
	replaced  []string
	written   int
}

func (h *recordingHooks) OnRunStart(_ context.Context, runID string, tracks, _ int) {
	h.runID, h.tracks = runID, tracks
}

func (h *recordingHooks) OnOrderingAccepted(_ context.Context, number, _ int) {
	h.accepted = append(h.accepted, number)
}

func (h *recordingHooks) OnOrderingSkipped(context.Context, int, string) {}

func (h *recordingHooks) OnRunComplete(_ context.Context, _ string, generated int, _ time.Duration, err error) {
	h.generated, h.err = generated, err
}

func (h *recordingHooks) OnFolderReplaced(_ context.Context, dir string) {
	h.replaced = append(h.replaced, dir)
}

func (h *recordingHooks) OnFolderWritten(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	if err == nil {
		h.written++
	}
}
