// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about shuffle runs
// and the folders they write, without the library depending on any
// particular metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRunHooks(&myRunHooks{})
//	    observability.SetWriteHooks(&myWriteHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Run().OnRunStart(ctx, runID, tracks, orderings)
//	// ... sample and write orderings ...
//	observability.Run().OnRunComplete(ctx, runID, generated, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Run Hooks
// =============================================================================

// RunHooks receives events from a shuffle run.
type RunHooks interface {
	// OnRunStart is called once the budget is known.
	OnRunStart(ctx context.Context, runID string, tracks, orderings int)

	// OnOrderingAccepted is called for every ordering the sampler accepted.
	// attempts counts the shuffles it took, including the accepted one.
	OnOrderingAccepted(ctx context.Context, number, attempts int)

	// OnOrderingSkipped is called when an ordering number is skipped because
	// its output folder already exists.
	OnOrderingSkipped(ctx context.Context, number int, dir string)

	// OnRunComplete is called when the run ends, successfully or not.
	OnRunComplete(ctx context.Context, runID string, generated int, duration time.Duration, err error)
}

// =============================================================================
// Write Hooks
// =============================================================================

// WriteHooks receives events from output folder handling.
type WriteHooks interface {
	// OnFolderReplaced records removal of an existing output folder.
	OnFolderReplaced(ctx context.Context, dir string)

	// OnFolderWritten records a completely written output folder.
	OnFolderWritten(ctx context.Context, dir string, tracks int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRunHooks is a no-op implementation of RunHooks.
type NoopRunHooks struct{}

func (NoopRunHooks) OnRunStart(context.Context, string, int, int)                     {}
func (NoopRunHooks) OnOrderingAccepted(context.Context, int, int)                     {}
func (NoopRunHooks) OnOrderingSkipped(context.Context, int, string)                   {}
func (NoopRunHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {}

// NoopWriteHooks is a no-op implementation of WriteHooks.
type NoopWriteHooks struct{}

func (NoopWriteHooks) OnFolderReplaced(context.Context, string)                           {}
func (NoopWriteHooks) OnFolderWritten(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	runHooks   RunHooks   = NoopRunHooks{}
	writeHooks WriteHooks = NoopWriteHooks{}
	hooksMu    sync.RWMutex
)

// SetRunHooks registers custom run hooks.
// This should be called once at application startup before any run starts.
func SetRunHooks(h RunHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		runHooks = h
	}
}

// SetWriteHooks registers custom write hooks.
// This should be called once at application startup before any run starts.
func SetWriteHooks(h WriteHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		writeHooks = h
	}
}

// Run returns the registered run hooks.
func Run() RunHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return runHooks
}

// Write returns the registered write hooks.
func Write() WriteHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return writeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	runHooks = NoopRunHooks{}
	writeHooks = NoopWriteHooks{}
}
