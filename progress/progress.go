package progress

import (
	"sync"
	"time"

	"github.com/viant/ticksim/internal/clock"
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// Progress keeps aggregated process counters for a single simulation run.
// It is safe for concurrent use.
type Progress struct {
	// Identification, informative only, filled when the run starts.
	RunID     string
	Workload  string
	StartedAt time.Time

	// Counters, refreshed from each tick snapshot.
	Tick      int
	Admitted  int
	Running   int
	Ready     int
	Waiting   int
	Exited    int
	IdleTicks int

	sync.Mutex
	onChange func(Progress)
}

// New creates a tracker for the given run.
func New(runID, workload string) *Progress {
	return &Progress{RunID: runID, Workload: workload, StartedAt: clock.Now()}
}

// Observe refreshes the counters from a tick snapshot. If an onChange
// callback has been registered it is invoked with a copy of the updated
// tracker outside the critical section so that the callback can perform
// slow operations (e.g. terminal output) without blocking the run.
func (p *Progress) Observe(snapshot *execution.Snapshot) {
	if p == nil || snapshot == nil {
		return
	}

	p.Lock()

	p.Tick = snapshot.Tick
	p.Admitted = len(snapshot.Processes)
	p.Running, p.Ready, p.Waiting, p.Exited = 0, 0, 0, 0
	for _, process := range snapshot.Processes {
		switch process.Status {
		case proc.StatusRunning:
			p.Running++
		case proc.StatusReady:
			p.Ready++
		case proc.StatusWaiting:
			p.Waiting++
		case proc.StatusExited:
			p.Exited++
		}
	}
	if p.Running == 0 {
		p.IdleTicks++
	}

	copied := *p
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(copied)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return *p
}

// OnChange registers a callback invoked after every Observe. Passing nil
// removes the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	defer p.Unlock()
	p.onChange = cb
}

// Done reports whether every admitted process has exited.
func (p *Progress) Done() bool {
	if p == nil {
		return false
	}
	p.Lock()
	defer p.Unlock()
	return p.Admitted > 0 && p.Exited == p.Admitted
}
