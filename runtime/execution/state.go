// Package execution holds the mutable state of one simulation run: the
// process arena, the ready queue, the resource table, the current process
// and the tick counter. The state is passed explicitly to every scheduler
// operation; there are no package-level tables.
package execution

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/model/resource"
)

// State is the simulation context. The ready queue, the per-resource wait
// queues and the resource owner slots are the only shared mutable state
// between the scheduling policy and the resource layer; every mutation is
// attributed to exactly one of Schedule, Acquire or Release (or to the tick
// driver for admission, aging and exit).
type State struct {
	Arena     *proc.Arena
	Ready     *proc.Queue
	Resources *resource.Table

	// Current is the process occupying the CPU, proc.None when idle.
	Current proc.Handle

	// Ticks is the monotonically increasing simulated time.
	Ticks int
}

// NewState creates a simulation context with the given number of resources.
func NewState(resources int) *State {
	return &State{
		Arena:     proc.NewArena(),
		Ready:     proc.NewQueue(),
		Resources: resource.NewTable(resources),
		Current:   proc.None,
	}
}

// CurrentProcess resolves the current handle, nil when the CPU is idle.
func (s *State) CurrentProcess() *proc.Process {
	return s.Arena.Get(s.Current)
}

// Admit takes ownership of a newly created process: it enters the arena with
// status ready and is appended to the ready queue. The caller (the workload
// collaborator) is expected to have populated identity, timing and priority
// fields; Admit normalises the rest.
func (s *State) Admit(p *proc.Process) proc.Handle {
	p.Status = proc.StatusReady
	p.OriginalPriority = p.Priority
	p.WaitingOn = -1
	if p.Remaining == 0 {
		p.Remaining = p.Burst
	}
	h := s.Arena.Add(p)
	s.Ready.Push(h)
	return h
}
