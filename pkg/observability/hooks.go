// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about collection building, combination,
// expansion, and pipeline execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries), keeps the engine dependency-free from observability
// frameworks, and allows different backends to plug in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDeckHooks(&myDeckHooks{})
//	    // ... build collections
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Deck().OnAppend(kind, index)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Deck Hooks
// =============================================================================

// DeckHooks receives events from collection builder operations.
// The builder is synchronous and pure, so every event fires inline with
// the operation that caused it.
type DeckHooks interface {
	// OnAppend records a successful item append with its insertion index.
	OnAppend(kind string, index int)

	// OnAppendError records a rejected append.
	OnAppendError(kind string, err error)

	// OnCombine records a combination of sources collections into items items.
	OnCombine(sources, items int)

	// OnExpand records a vector expansion that appended n items.
	OnExpand(kind string, n int)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the build → tree → report pipeline.
type PipelineHooks interface {
	// OnDecodeComplete records manifest decoding into a collection.
	OnDecodeComplete(items int, duration time.Duration, err error)

	// OnTreeComplete records hierarchy tree construction.
	OnTreeComplete(nodes, depth int, duration time.Duration)

	// OnReportComplete records summary generation.
	OnReportComplete(size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDeckHooks is a no-op implementation of DeckHooks.
type NoopDeckHooks struct{}

func (NoopDeckHooks) OnAppend(string, int)        {}
func (NoopDeckHooks) OnAppendError(string, error) {}
func (NoopDeckHooks) OnCombine(int, int)          {}
func (NoopDeckHooks) OnExpand(string, int)        {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDecodeComplete(int, time.Duration, error) {}
func (NoopPipelineHooks) OnTreeComplete(int, int, time.Duration)     {}
func (NoopPipelineHooks) OnReportComplete(int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	deckHooks     DeckHooks     = NoopDeckHooks{}
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetDeckHooks registers custom deck hooks.
// This should be called once at application startup before any builder operations.
func SetDeckHooks(h DeckHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		deckHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Deck returns the registered deck hooks.
func Deck() DeckHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return deckHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	deckHooks = NoopDeckHooks{}
	pipelineHooks = NoopPipelineHooks{}
}
