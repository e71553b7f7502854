package stream

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/quietloop/artstream/internal/model"
)

// Renderer is the display collaborator the engine hands records to.
//
// The engine only knows "display this record" and "clear the screen";
// formatting, borders and colors are entirely the renderer's business.
type Renderer interface {
	Display(rec *model.Record)
	Clear()
}

// EngineState tracks the engine through its lifecycle.
type EngineState int32

const (
	// StateIdle is the state before Run is called.
	StateIdle EngineState = iota

	// StateRunning is the state while the display loop is active.
	StateRunning

	// StateTerminated is the state after Run returns. The only way out of
	// StateRunning is cancellation; the loop itself never ends.
	StateTerminated
)

// String returns the state name.
func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Engine owns the loaded record collection and runs the display loop.
//
// The loop picks one record uniformly at random (with replacement), hands
// it to the Renderer, then waits for the configured interval. It has no
// termination condition of its own: it runs until the context is
// cancelled, and every wait is interruptible so cancellation fires
// promptly even mid-sleep.
//
// Example:
//
//	engine := stream.NewEngine(records, 2*time.Second, renderer, func(ev stream.Event) {
//	    fmt.Println(ev.Message)
//	})
//	engine.Run(ctx) // blocks until ctx is cancelled
type Engine struct {
	records  []*model.Record
	interval time.Duration
	renderer Renderer
	onEvent  func(Event)

	// StartupPause is a single fixed delay before the loop starts, giving
	// the operator a moment to read the startup messages. Set before Run.
	StartupPause time.Duration

	// Pick selects a record index from [0, n). Overridable before Run for
	// deterministic tests; defaults to a uniform draw.
	Pick func(n int) int

	state atomic.Int32
}

// NewEngine creates an Engine over an immutable record collection.
//
// The records slice must not be mutated after this call. onEvent may be
// nil, in which case events are discarded.
func NewEngine(records []*model.Record, interval time.Duration, renderer Renderer, onEvent func(Event)) *Engine {
	return &Engine{
		records:      records,
		interval:     interval,
		renderer:     renderer,
		onEvent:      onEvent,
		StartupPause: time.Second,
		Pick:         rand.IntN,
	}
}

// State returns the engine's lifecycle state.
func (e *Engine) State() EngineState {
	return EngineState(e.state.Load())
}

// Len returns the size of the record collection.
func (e *Engine) Len() int {
	return len(e.records)
}

// Run executes the display loop until ctx is cancelled.
//
// An empty collection is a normal no-op: Run reports "no entries
// available" and returns immediately. Cancellation is the designed
// termination path, not an error, so Run always returns nil; the caller
// owns whatever clear-screen/goodbye sequence should follow.
func (e *Engine) Run(ctx context.Context) error {
	if len(e.records) == 0 {
		e.emit(Event{Message: "no entries available in the database", Level: LevelWarning})
		return nil
	}

	e.state.Store(int32(StateRunning))
	defer e.state.Store(int32(StateTerminated))

	e.emit(Event{Message: fmt.Sprintf("streaming %d entries, one every %s", len(e.records), e.interval), Level: LevelInfo})
	e.emit(Event{Message: "starting...", Level: LevelInfo})

	if !e.wait(ctx, e.StartupPause) {
		return nil
	}

	for {
		rec := e.records[e.Pick(len(e.records))]
		e.emit(Event{Message: "displaying " + rec.String(), Level: LevelVerbose})
		e.renderer.Display(rec)

		if !e.wait(ctx, e.interval) {
			return nil
		}
	}
}

// wait blocks for d or until ctx is cancelled. It returns false when the
// wait was interrupted.
func (e *Engine) wait(ctx context.Context, d time.Duration) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func (e *Engine) emit(event Event) {
	if e.onEvent != nil {
		e.onEvent(event)
	}
}
