package stream

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quietloop/artstream/internal/model"
)

// recordingRenderer captures Display calls for assertions.
type recordingRenderer struct {
	mu       sync.Mutex
	titles   []string
	clears   int
	notifyCh chan struct{}
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{notifyCh: make(chan struct{}, 1024)}
}

func (r *recordingRenderer) Display(rec *model.Record) {
	r.mu.Lock()
	r.titles = append(r.titles, rec.Title)
	r.mu.Unlock()
	select {
	case r.notifyCh <- struct{}{}:
	default:
	}
}

func (r *recordingRenderer) Clear() {
	r.mu.Lock()
	r.clears++
	r.mu.Unlock()
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.titles)
}

func (r *recordingRenderer) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}

func testRecords(n int) []*model.Record {
	records := make([]*model.Record, n)
	for i := range records {
		records[i] = model.NewRecord(fmt.Sprintf("R%d", i), "1x1", 1, 1, "test", "*")
	}
	return records
}

func TestEngine_EmptyCollection(t *testing.T) {
	renderer := newRecordingRenderer()

	var events []Event
	engine := NewEngine(nil, time.Second, renderer, func(ev Event) {
		events = append(events, ev)
	})

	done := make(chan error, 1)
	go func() { done <- engine.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run blocked on an empty collection")
	}

	if renderer.count() != 0 {
		t.Errorf("renderer called %d times, want 0", renderer.count())
	}
	if len(events) != 1 || !strings.Contains(events[0].Message, "no entries") {
		t.Errorf("events = %v, want a single no-entries report", events)
	}
}

func TestEngine_CancellationStopsLoop(t *testing.T) {
	renderer := newRecordingRenderer()
	engine := NewEngine(testRecords(3), time.Millisecond, renderer, nil)
	engine.StartupPause = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	// Let a few records render, then interrupt mid-loop.
	for i := 0; i < 3; i++ {
		select {
		case <-renderer.notifyCh:
		case <-time.After(2 * time.Second):
			t.Fatal("no renders observed")
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on cancellation: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	// No further renders once Run has returned.
	after := renderer.count()
	time.Sleep(20 * time.Millisecond)
	if renderer.count() != after {
		t.Errorf("renders continued after Run returned: %d -> %d", after, renderer.count())
	}

	if engine.State() != StateTerminated {
		t.Errorf("State() = %v, want %v", engine.State(), StateTerminated)
	}
}

func TestEngine_CancellationDuringStartupPause(t *testing.T) {
	renderer := newRecordingRenderer()
	engine := NewEngine(testRecords(1), time.Millisecond, renderer, nil)
	engine.StartupPause = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return when cancelled mid-startup-pause")
	}

	if renderer.count() != 0 {
		t.Errorf("renderer called %d times before startup pause elapsed", renderer.count())
	}
}

func TestEngine_SelectionCoversAllRecords(t *testing.T) {
	renderer := newRecordingRenderer()
	engine := NewEngine(testRecords(3), 0, renderer, nil)
	engine.StartupPause = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for renderer.count() < 500 {
		select {
		case <-renderer.notifyCh:
		case <-deadline:
			t.Fatal("timed out waiting for renders")
		}
	}
	cancel()
	<-done

	seen := renderer.seen()
	counts := map[string]int{}
	repeat := false
	for i, title := range seen {
		counts[title]++
		if i > 0 && seen[i-1] == title {
			repeat = true
		}
	}

	for i := 0; i < 3; i++ {
		title := fmt.Sprintf("R%d", i)
		if counts[title] == 0 {
			t.Errorf("record %s never selected in %d draws", title, len(seen))
		}
	}
	if !repeat {
		t.Error("no consecutive repeat observed; selection should be with replacement")
	}
}

func TestEngine_DeterministicPick(t *testing.T) {
	renderer := newRecordingRenderer()
	engine := NewEngine(testRecords(4), 0, renderer, nil)
	engine.StartupPause = 0

	sequence := []int{2, 0, 3}
	var calls int
	engine.Pick = func(n int) int {
		if n != 4 {
			t.Errorf("Pick(n) called with n=%d, want 4", n)
		}
		idx := sequence[calls%len(sequence)]
		calls++
		return idx
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	for renderer.count() < 3 {
		select {
		case <-renderer.notifyCh:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for renders")
		}
	}
	cancel()
	<-done

	seen := renderer.seen()[:3]
	want := []string{"R2", "R0", "R3"}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("display %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestEngine_StateLifecycle(t *testing.T) {
	renderer := newRecordingRenderer()
	engine := NewEngine(testRecords(1), time.Millisecond, renderer, nil)
	engine.StartupPause = 0

	if engine.State() != StateIdle {
		t.Errorf("initial State() = %v, want %v", engine.State(), StateIdle)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	select {
	case <-renderer.notifyCh:
	case <-time.After(2 * time.Second):
		t.Fatal("no render observed")
	}
	if engine.State() != StateRunning {
		t.Errorf("State() mid-loop = %v, want %v", engine.State(), StateRunning)
	}

	cancel()
	<-done
	if engine.State() != StateTerminated {
		t.Errorf("State() after Run = %v, want %v", engine.State(), StateTerminated)
	}
}

func TestEngineState_String(t *testing.T) {
	tests := []struct {
		state EngineState
		want  string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateTerminated, "terminated"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
