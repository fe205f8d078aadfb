// Package workload defines the declarative description a simulation run is
// driven by: the resource count, the processes with their arrival times and
// execution estimates, and the resource acquisitions each process performs.
package workload

import (
	"fmt"

	"github.com/viant/ticksim/model/resource"
)

// Acquisition describes one exclusive hold of a resource by a process: the
// process requests the resource when its age reaches At and releases it
// after executing Duration further ticks.
type Acquisition struct {
	Resource int `json:"resource" yaml:"resource"`
	At       int `json:"at" yaml:"at"`
	Duration int `json:"duration" yaml:"duration"`
}

// ProcessSpec describes one process of the workload.
type ProcessSpec struct {
	ID           int           `json:"id" yaml:"id"`
	Arrival      int           `json:"arrival" yaml:"arrival"`
	Lifespan     int           `json:"lifespan" yaml:"lifespan"`
	Burst        int           `json:"burst,omitempty" yaml:"burst,omitempty"`
	Priority     int           `json:"priority,omitempty" yaml:"priority,omitempty"`
	Acquisitions []Acquisition `json:"acquisitions,omitempty" yaml:"acquisitions,omitempty"`
}

// Workload is the root of a workload description document.
type Workload struct {
	Name          string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Resources     int                    `json:"resources,omitempty" yaml:"resources,omitempty"`
	Policy        string                 `json:"policy,omitempty" yaml:"policy,omitempty"`
	PolicyOptions map[string]interface{} `json:"policyOptions,omitempty" yaml:"policyOptions,omitempty"`
	Processes     []ProcessSpec          `json:"processes" yaml:"processes"`
}

// Init fills derived defaults: a zero burst means the whole lifespan is one
// CPU burst.
func (w *Workload) Init() {
	for i := range w.Processes {
		spec := &w.Processes[i]
		if spec.Burst == 0 {
			spec.Burst = spec.Lifespan
		}
	}
}

// Validate checks the workload for internal consistency.
func (w *Workload) Validate() error {
	if len(w.Processes) == 0 {
		return fmt.Errorf("workload has no processes")
	}
	seen := make(map[int]bool)
	for i := range w.Processes {
		spec := &w.Processes[i]
		if seen[spec.ID] {
			return fmt.Errorf("duplicate process id %d", spec.ID)
		}
		seen[spec.ID] = true
		if spec.Lifespan <= 0 {
			return fmt.Errorf("process %d: lifespan must be > 0", spec.ID)
		}
		if spec.Arrival < 0 {
			return fmt.Errorf("process %d: arrival must be >= 0", spec.ID)
		}
		for _, acq := range spec.Acquisitions {
			if acq.Resource < 0 || acq.Resource >= w.Resources {
				return fmt.Errorf("process %d: resource %d outside table of %d", spec.ID, acq.Resource, w.Resources)
			}
			if acq.At < 0 || acq.Duration <= 0 {
				return fmt.Errorf("process %d: acquisition of resource %d has invalid timing", spec.ID, acq.Resource)
			}
			if acq.At+acq.Duration > spec.Lifespan {
				return fmt.Errorf("process %d: holds resource %d beyond its lifespan", spec.ID, acq.Resource)
			}
		}
	}
	return nil
}

// Ceilings precomputes the static priority ceiling of every resource: the
// highest priority (numerically smallest value) among all processes that
// ever request it. Resources nobody requests keep resource.NoCeiling.
func (w *Workload) Ceilings() []int {
	ceilings := make([]int, w.Resources)
	for i := range ceilings {
		ceilings[i] = resource.NoCeiling
	}
	for i := range w.Processes {
		spec := &w.Processes[i]
		for _, acq := range spec.Acquisitions {
			if acq.Resource >= 0 && acq.Resource < len(ceilings) && spec.Priority < ceilings[acq.Resource] {
				ceilings[acq.Resource] = spec.Priority
			}
		}
	}
	return ceilings
}
