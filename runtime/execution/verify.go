package execution

import (
	"errors"
	"fmt"

	"github.com/viant/ticksim/model/proc"
)

// ErrInvariant tags every invariant violation so that callers can detect the
// class with errors.Is. An invariant violation indicates a logic defect in a
// policy implementation; the driver aborts the run on it.
var ErrInvariant = errors.New("execution: invariant violated")

func invariantErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Verify checks the queue/state invariants that must hold after every tick:
//
//  1. the running process is not present in any queue
//  2. every ready process is in the ready queue exactly once; every waiting
//     process is in exactly one resource wait queue
//  3. a resource owner is not present in any wait queue
//  4. remaining execution time is never negative
//
// The returned error names the broken invariant and the offending process.
func (s *State) Verify() error {
	memberships := make(map[proc.Handle]int)
	inReady := make(map[proc.Handle]int)
	inWait := make(map[proc.Handle]int)

	for _, h := range s.Ready.Handles() {
		memberships[h]++
		inReady[h]++
	}
	for i := 0; i < s.Resources.Len(); i++ {
		r := s.Resources.Get(i)
		for _, h := range r.Waiters.Handles() {
			memberships[h]++
			inWait[h]++
			if r.Owner == h {
				return invariantErr("process %d owns resource %d and waits on it", s.Arena.Get(h).ID, r.ID)
			}
		}
	}

	if s.Current.Valid() {
		if memberships[s.Current] > 0 {
			return invariantErr("running process %d is queued", s.CurrentProcess().ID)
		}
	}

	for _, h := range s.Arena.Handles() {
		p := s.Arena.Get(h)
		if count := memberships[h]; count > 1 {
			return invariantErr("process %d is in %d queues", p.ID, count)
		}
		switch p.Status {
		case proc.StatusReady:
			if inReady[h] != 1 {
				return invariantErr("ready process %d is in the ready queue %d times", p.ID, inReady[h])
			}
		case proc.StatusWaiting:
			if inWait[h] != 1 {
				return invariantErr("waiting process %d is in %d wait queues", p.ID, inWait[h])
			}
			if p.WaitingOn < 0 {
				return invariantErr("waiting process %d records no resource", p.ID)
			}
		case proc.StatusRunning:
			if s.Current != h {
				return invariantErr("process %d claims to run but is not current", p.ID)
			}
		case proc.StatusExited:
			if memberships[h] != 0 {
				return invariantErr("exited process %d is still queued", p.ID)
			}
		}
		if p.Remaining < 0 {
			return invariantErr("process %d has negative remaining time", p.ID)
		}
	}
	return nil
}
