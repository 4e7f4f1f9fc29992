// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about pipeline stage execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for pipeline stage events
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the geometry core dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks around each stage:
//
//	observability.Pipeline().OnGenerateStart(ctx, alg, windowCount)
//	// ... generate zones ...
//	observability.Pipeline().OnGenerateComplete(ctx, alg, zoneCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the zone geometry pipeline.
type PipelineHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, algorithm string, windowCount int)
	OnGenerateComplete(ctx context.Context, algorithm string, zoneCount int, duration time.Duration)

	// Resolve events
	OnResolveStart(ctx context.Context, layout string, zoneCount int)
	OnResolveComplete(ctx context.Context, layout string, duration time.Duration)

	// Constraint events
	OnConstrainStart(ctx context.Context, layout string)
	OnConstrainComplete(ctx context.Context, layout string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, string, int)                      {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, string, int, time.Duration)    {}
func (NoopPipelineHooks) OnResolveStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnResolveComplete(context.Context, string, time.Duration)          {}
func (NoopPipelineHooks) OnConstrainStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnConstrainComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
