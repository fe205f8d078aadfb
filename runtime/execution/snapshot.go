package execution

import "github.com/viant/ticksim/model/proc"

// Snapshot is a read-only view of the simulation state consumed by external
// reporting facilities. The core never depends on it for correctness.
type Snapshot struct {
	Tick      int            `json:"tick"`
	Current   int            `json:"current"` // process id, -1 when idle
	Ready     []int          `json:"ready"`   // process ids in queue order
	Processes []ProcessInfo  `json:"processes"`
	Resources []ResourceInfo `json:"resources"`
}

// ProcessInfo is the per-process slice of a snapshot.
type ProcessInfo struct {
	ID        int         `json:"id"`
	Status    proc.Status `json:"status"`
	Priority  int         `json:"priority"`
	Age       int         `json:"age"`
	Remaining int         `json:"remaining"`
}

// ResourceInfo is the per-resource slice of a snapshot.
type ResourceInfo struct {
	ID      int   `json:"id"`
	Owner   int   `json:"owner"` // process id, -1 when free
	Waiters []int `json:"waiters"`
}

// Snapshot captures the current queue contents, process statuses and
// resource ownership.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{Tick: s.Ticks, Current: -1}
	if p := s.CurrentProcess(); p != nil {
		snap.Current = p.ID
	}
	for _, h := range s.Ready.Handles() {
		snap.Ready = append(snap.Ready, s.Arena.Get(h).ID)
	}
	for _, h := range s.Arena.Handles() {
		p := s.Arena.Get(h)
		snap.Processes = append(snap.Processes, ProcessInfo{
			ID:        p.ID,
			Status:    p.Status,
			Priority:  p.Priority,
			Age:       p.Age,
			Remaining: p.Remaining,
		})
	}
	for i := 0; i < s.Resources.Len(); i++ {
		r := s.Resources.Get(i)
		info := ResourceInfo{ID: r.ID, Owner: -1}
		if owner := s.Arena.Get(r.Owner); owner != nil {
			info.Owner = owner.ID
		}
		for _, h := range r.Waiters.Handles() {
			info.Waiters = append(info.Waiters, s.Arena.Get(h).ID)
		}
		snap.Resources = append(snap.Resources, info)
	}
	return snap
}
