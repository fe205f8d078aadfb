// Package proc defines the schedulable unit of the simulator together with
// the arena/handle addressing scheme and the ordered handle queues shared by
// the scheduling policies and the resource layer.
package proc

import "fmt"

// Handle addresses a process inside an Arena. Handles stay valid for the
// whole simulation run, also after the process exited.
type Handle int

// None is the zero-value handle used for "no process" (idle CPU, free
// resource owner slot).
const None Handle = -1

// Valid reports whether the handle refers to a process slot.
func (h Handle) Valid() bool { return h >= 0 }

// Status enumerates the process lifecycle states.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusWaiting
	StatusExited
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusWaiting:
		return "waiting"
	case StatusExited:
		return "exited"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Process represents a single simulated process. All fields are plain data;
// every mutation is performed by exactly one of the scheduler operations or
// by the tick driver, never by the process itself.
type Process struct {
	ID       int `json:"id"`
	Arrival  int `json:"arrival"`
	Lifespan int `json:"lifespan"`

	// Age counts the ticks the process has actually executed.
	Age int `json:"age"`

	// Burst is the static total execution estimate used by SJF.
	Burst int `json:"burst"`
	// Remaining is decremented once per executed tick, used by SRTF.
	Remaining int `json:"remaining"`

	// Priority is the current priority; lower value means higher priority.
	// Mutable under PCP/PIP, restored from OriginalPriority on release.
	Priority         int `json:"priority"`
	OriginalPriority int `json:"originalPriority"`

	Status Status `json:"status"`

	// WaitingOn holds the resource id the process is blocked on, or -1.
	WaitingOn int `json:"waitingOn"`
}

// Runnable reports whether the process can still occupy the CPU: it is not
// blocked on a resource and has remaining lifespan.
func (p *Process) Runnable() bool {
	return p.Status != StatusWaiting && p.Status != StatusExited && p.Age < p.Lifespan
}

// Arena owns every process of a simulation run and hands out stable handles.
// Queues hold handles rather than pointers so that moving a process between
// queues can never leave a dangling reference behind.
type Arena struct {
	procs []*Process
}

// NewArena creates an empty process arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add places the process in the arena and returns its handle.
func (a *Arena) Add(p *Process) Handle {
	a.procs = append(a.procs, p)
	return Handle(len(a.procs) - 1)
}

// Get resolves a handle, returning nil for None or out-of-range handles.
func (a *Arena) Get(h Handle) *Process {
	if !h.Valid() || int(h) >= len(a.procs) {
		return nil
	}
	return a.procs[h]
}

// Len returns the number of processes ever admitted.
func (a *Arena) Len() int { return len(a.procs) }

// Handles returns the handle of every process in admission order.
func (a *Arena) Handles() []Handle {
	out := make([]Handle, len(a.procs))
	for i := range a.procs {
		out[i] = Handle(i)
	}
	return out
}
