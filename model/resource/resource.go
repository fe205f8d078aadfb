// Package resource models the fixed set of exclusive resources processes
// compete for. Resources are pre-allocated for the whole simulation run;
// only the owner slot and the wait queue ever mutate.
package resource

import (
	"math"

	"github.com/viant/ticksim/model/proc"
)

// NoCeiling marks a resource no process ever requests; any priority compares
// better than it.
const NoCeiling = math.MaxInt32

// Resource is one exclusive lock.
type Resource struct {
	ID int `json:"id"`

	// Owner is the handle of the holding process, proc.None when free.
	Owner proc.Handle `json:"owner"`

	// Waiters holds the processes blocked on this resource in arrival order.
	Waiters *proc.Queue `json:"-"`

	// Ceiling is the highest priority (numerically smallest value) of any
	// process that may ever request this resource. Only PCP consults it.
	Ceiling int `json:"ceiling"`
}

// Held reports whether the resource currently has an owner.
func (r *Resource) Held() bool { return r.Owner.Valid() }

// Table is the fixed-size resource table of a simulation run.
type Table struct {
	resources []*Resource
}

// NewTable pre-allocates count resources with no owner and no ceiling.
func NewTable(count int) *Table {
	t := &Table{resources: make([]*Resource, count)}
	for i := 0; i < count; i++ {
		t.resources[i] = &Resource{
			ID:      i,
			Owner:   proc.None,
			Waiters: proc.NewQueue(),
			Ceiling: NoCeiling,
		}
	}
	return t
}

// Get returns the resource with the given id, nil when out of range.
func (t *Table) Get(id int) *Resource {
	if id < 0 || id >= len(t.resources) {
		return nil
	}
	return t.resources[id]
}

// Len returns the number of resources.
func (t *Table) Len() int { return len(t.resources) }

// SetCeilings installs the statically computed priority ceilings; the slice
// index is the resource id.
func (t *Table) SetCeilings(ceilings []int) {
	for i, c := range ceilings {
		if i < len(t.resources) {
			t.resources[i].Ceiling = c
		}
	}
}

// OwnedBy returns every resource currently held by the process.
func (t *Table) OwnedBy(h proc.Handle) []*Resource {
	var out []*Resource
	for _, r := range t.resources {
		if r.Owner == h {
			out = append(out, r)
		}
	}
	return out
}
