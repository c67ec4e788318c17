package buildpipeline

import (
	"sync"
	"time"
)

// Stage describes a step of builtin synthesis for one module.
type Stage string

const (
	// StageLoad collects the module's own definitions.
	StageLoad Stage = "load"
	// StageMerge builds the builtin definitions and prepends them to the
	// module.
	StageMerge Stage = "merge"
	// StageVerify checks type variable uniqueness.
	StageVerify Stage = "verify"
)

// Stages lists every stage in execution order.
func Stages() []Stage {
	return []Stage{StageLoad, StageMerge, StageVerify}
}

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the module is waiting for a worker.
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a module, or for the whole run when Module
// is empty.
type Event struct {
	Module  string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations summed over modules. The zero value is
// ready to use and safe for concurrent use.
type Timings struct {
	mu     sync.Mutex
	stages map[Stage]time.Duration
}

// Add accumulates dur into stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration, 3)
	}
	t.stages[stage] += dur
}

// Has reports whether a duration for stage is recorded.
func (t *Timings) Has(stage Stage) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t *Timings) Duration(stage Stage) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stages[stage]
}

// Sum returns the total over the provided stages.
func (t *Timings) Sum(stages ...Stage) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
