// Package report defines the outcome of a simulation run and the transition
// events the driver publishes while it advances. Both are consumed by
// external facilities (stores, reporters); the core never depends on them
// for correctness.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/ticksim/model/proc"
)

// ProcessMetrics summarises one process after the run.
type ProcessMetrics struct {
	ID          int  `json:"id"`
	Arrival     int  `json:"arrival"`
	Completion  int  `json:"completion"` // tick after which the process exited, -1 when it never did
	Turnaround  int  `json:"turnaround"` // completion - arrival
	Waited      int  `json:"waited"`     // ticks spent ready or blocked
	Preemptions int  `json:"preemptions"`
	Exited      bool `json:"exited"`
}

// RunReport is the persisted record of one simulation run.
type RunReport struct {
	ID        string           `json:"id"`
	Workload  string           `json:"workload,omitempty"`
	Policy    string           `json:"policy"`
	Ticks     int              `json:"ticks"`
	IdleTicks int              `json:"idleTicks"`
	Stalled   bool             `json:"stalled"` // hit the tick limit with live processes (e.g. deadlock)
	Timeline  []string         `json:"timeline"`
	Processes []ProcessMetrics `json:"processes"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TimelineString renders the per-tick CPU occupancy, one tick per line, in a
// form stable enough to diff in tests:
//
//	0: P1
//	1: -
func (r *RunReport) TimelineString() string {
	var b strings.Builder
	for i, slot := range r.Timeline {
		fmt.Fprintf(&b, "%d: %s\n", i, slot)
	}
	return b.String()
}

// Kind enumerates the transition event kinds the driver emits.
type Kind string

const (
	KindAdmitted   Kind = "admitted"
	KindDispatched Kind = "dispatched"
	KindPreempted  Kind = "preempted"
	KindGranted    Kind = "granted"
	KindBlocked    Kind = "blocked"
	KindReleased   Kind = "released"
	KindWoken      Kind = "woken"
	KindExited     Kind = "exited"
	KindIdle       Kind = "idle"
)

// Transition is one simulation event: a process status change, a resource
// grant/block/release, or an idle tick.
type Transition struct {
	Kind     Kind        `json:"kind"`
	Tick     int         `json:"tick"`
	Process  int         `json:"process,omitempty"`  // process id, -1 for idle ticks
	Resource int         `json:"resource,omitempty"` // resource id, -1 when not applicable
	Status   proc.Status `json:"status,omitempty"`
	Priority int         `json:"priority,omitempty"` // current priority at event time
}
