// Package scheduler provides the pluggable scheduling policies of the
// simulator. A policy is a named bundle of five operations over the shared
// simulation state; exactly one policy is active per run, selected once at
// start through the Registry.
package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// Policy decides, once per tick, which process occupies the CPU, and
// arbitrates exclusive resource access for the process it selected.
//
// Schedule returns the handle of the process to run next, or proc.None when
// no process is runnable (an expected outcome, not an error). The returned
// process is detached from every queue; the driver marks it running. A
// preemptive policy re-queues a still-runnable current process before
// selecting.
//
// Acquire attempts to take the resource for the current process. A false
// result means the process was blocked (status waiting, appended to the
// resource wait queue); the caller must yield the CPU and schedule again.
//
// Release transfers ownership away from the current process and may promote
// the oldest waiter back to the ready queue. Calling it for a resource the
// current process does not own is a precondition violation surfaced as an
// error the driver treats as fatal.
type Policy interface {
	Name() string
	Initialize(st *execution.State) error
	Finalize(st *execution.State)
	Schedule(st *execution.State) proc.Handle
	Acquire(st *execution.State, resourceID int) bool
	Release(st *execution.State, resourceID int) error
}

// ForkAware is implemented by policies that need a notification when the
// workload collaborator admits a new process (SRTF uses it to make sure the
// remaining execution time starts at the full estimate).
type ForkAware interface {
	Forked(st *execution.State, h proc.Handle)
}

// lifecycle provides the no-op Initialize/Finalize shared by policies that
// keep no per-run state.
type lifecycle struct{}

func (lifecycle) Initialize(*execution.State) error { return nil }
func (lifecycle) Finalize(*execution.State)         {}
