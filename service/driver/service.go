// Package driver implements the tick loop: it admits processes from the
// workload, asks the active policy for a process to run once per simulated
// time unit, performs the script-driven resource acquisitions and releases
// on behalf of the running process, and retires processes whose lifespan is
// exhausted.
package driver

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/viant/ticksim/internal/clock"
	"github.com/viant/ticksim/internal/idgen"
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/model/report"
	"github.com/viant/ticksim/model/workload"
	"github.com/viant/ticksim/runtime/execution"
	"github.com/viant/ticksim/scheduler"
	"github.com/viant/ticksim/service/event"
)

// Config represents driver configuration.
type Config struct {
	// MaxTicks bounds the simulation; reaching it with live processes marks
	// the run as stalled (deadlocks are not detected, only outlived).
	MaxTicks int `json:"maxTicks" yaml:"maxTicks"`

	// VerifyInvariants re-checks the queue/state invariants after every
	// tick and aborts the run on the first violation.
	VerifyInvariants bool `json:"verifyInvariants" yaml:"verifyInvariants"`
}

// DefaultConfig returns the default driver configuration.
func DefaultConfig() Config {
	return Config{MaxTicks: 100000, VerifyInvariants: true}
}

// Service drives one simulation run at a time with a fixed policy.
type Service struct {
	config   Config
	policy   scheduler.Policy
	events   *event.Service
	observer func(*execution.Snapshot)
}

// Option customises the driver.
type Option func(s *Service)

// WithEventService attaches an event service the driver publishes
// transition events to. Publishing failures are logged, never fatal.
func WithEventService(events *event.Service) Option {
	return func(s *Service) { s.events = events }
}

// WithSnapshotObserver registers a callback receiving a read-only state
// snapshot at the end of every tick (the status-dump hook).
func WithSnapshotObserver(observer func(*execution.Snapshot)) Option {
	return func(s *Service) { s.observer = observer }
}

// New creates a driver for the supplied policy.
func New(policy scheduler.Policy, config Config, options ...Option) *Service {
	s := &Service{config: config, policy: policy}
	if s.config.MaxTicks <= 0 {
		s.config.MaxTicks = DefaultConfig().MaxTicks
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// hold tracks one scripted acquisition of a process across the run.
type hold struct {
	acq      workload.Acquisition
	acquired bool
	released bool
}

// metrics accumulates per-process accounting while the run advances.
type metrics struct {
	waited      int
	preemptions int
	completion  int
	exited      bool
}

// Run executes the workload to completion (or to the tick limit) and
// returns the run report.
func (s *Service) Run(ctx context.Context, wl *workload.Workload) (*report.RunReport, error) {
	if err := wl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	st := execution.NewState(wl.Resources)
	st.Resources.SetCeilings(wl.Ceilings())

	if err := s.policy.Initialize(st); err != nil {
		return nil, fmt.Errorf("policy %v failed to initialize: %w", s.policy.Name(), err)
	}
	defer s.policy.Finalize(st)

	runID := idgen.New()
	publish := s.publisher(ctx, runID)

	specs := make([]workload.ProcessSpec, len(wl.Processes))
	copy(specs, wl.Processes)
	sort.SliceStable(specs, func(i, j int) bool { return specs[i].Arrival < specs[j].Arrival })

	holds := make(map[proc.Handle][]*hold)
	stats := make(map[proc.Handle]*metrics)

	var (
		timeline  []string
		idleTicks int
		stalled   bool
		admitted  int
	)

	for tick := 0; ; tick++ {
		if tick >= s.config.MaxTicks {
			stalled = s.anyLive(st)
			break
		}
		st.Ticks = tick

		// Admissions happen before this tick's scheduling decision.
		for admitted < len(specs) && specs[admitted].Arrival <= tick {
			spec := specs[admitted]
			admitted++
			h := st.Admit(&proc.Process{
				ID:       spec.ID,
				Arrival:  spec.Arrival,
				Lifespan: spec.Lifespan,
				Burst:    spec.Burst,
				Priority: spec.Priority,
			})
			for _, acq := range spec.Acquisitions {
				holds[h] = append(holds[h], &hold{acq: acq})
			}
			stats[h] = &metrics{completion: -1}
			if forkAware, ok := s.policy.(scheduler.ForkAware); ok {
				forkAware.Forked(st, h)
			}
			publish(report.Transition{Kind: report.KindAdmitted, Tick: tick, Process: spec.ID, Resource: -1, Status: proc.StatusReady, Priority: spec.Priority})
		}

		ran, err := s.dispatch(st, holds, stats, publish, tick)
		if err != nil {
			return nil, err
		}

		if ran.Valid() {
			p := st.Arena.Get(ran)
			p.Age++
			if p.Remaining > 0 {
				p.Remaining--
			}
			timeline = append(timeline, fmt.Sprintf("P%d", p.ID))

			// Releases due at this execution point precede the next tick's
			// scheduling decision.
			for _, hd := range holds[ran] {
				if !hd.acquired || hd.released || hd.acq.At+hd.acq.Duration != p.Age {
					continue
				}
				woken := s.headWaiter(st, hd.acq.Resource)
				if err := s.policy.Release(st, hd.acq.Resource); err != nil {
					return nil, fmt.Errorf("tick %d: %w", tick, err)
				}
				hd.released = true
				publish(report.Transition{Kind: report.KindReleased, Tick: tick, Process: p.ID, Resource: hd.acq.Resource, Status: p.Status, Priority: p.Priority})
				if wokenProc := st.Arena.Get(woken); wokenProc != nil && wokenProc.Status == proc.StatusReady {
					publish(report.Transition{Kind: report.KindWoken, Tick: tick, Process: wokenProc.ID, Resource: hd.acq.Resource, Status: wokenProc.Status, Priority: wokenProc.Priority})
				}
			}

			if p.Age >= p.Lifespan {
				if owned := st.Resources.OwnedBy(ran); len(owned) > 0 {
					return nil, fmt.Errorf("tick %d: %w: process %d exits holding resource %d", tick, execution.ErrInvariant, p.ID, owned[0].ID)
				}
				p.Status = proc.StatusExited
				st.Current = proc.None
				stats[ran].completion = tick + 1
				stats[ran].exited = true
				publish(report.Transition{Kind: report.KindExited, Tick: tick, Process: p.ID, Resource: -1, Status: proc.StatusExited, Priority: p.Priority})
			}
		} else {
			idleTicks++
			timeline = append(timeline, "-")
			publish(report.Transition{Kind: report.KindIdle, Tick: tick, Process: -1, Resource: -1})
		}

		for h, stat := range stats {
			switch st.Arena.Get(h).Status {
			case proc.StatusReady, proc.StatusWaiting:
				stat.waited++
			}
		}

		if s.config.VerifyInvariants {
			if err := st.Verify(); err != nil {
				return nil, fmt.Errorf("tick %d: %w", tick, err)
			}
		}
		if s.observer != nil {
			s.observer(st.Snapshot())
		}

		if admitted == len(specs) && !s.anyLive(st) {
			break
		}
	}

	return s.buildReport(runID, wl, st, stats, timeline, idleTicks, stalled), nil
}

// dispatch runs the schedule/acquire loop of one tick: the policy picks a
// process, scripted acquisitions due at its age are attempted, and a
// blocked result yields the CPU and schedules again until a process runs
// unblocked or the ready pool is exhausted.
func (s *Service) dispatch(st *execution.State, holds map[proc.Handle][]*hold, stats map[proc.Handle]*metrics, publish func(report.Transition), tick int) (proc.Handle, error) {
	prev := st.Current
	for {
		h := s.policy.Schedule(st)
		if !h.Valid() {
			st.Current = proc.None
			s.notePreemption(st, prev, proc.None, stats, publish, tick)
			return proc.None, nil
		}
		p := st.Arena.Get(h)
		if p == nil {
			return proc.None, fmt.Errorf("tick %d: policy %v returned unknown handle %v", tick, s.policy.Name(), h)
		}
		st.Current = h
		p.Status = proc.StatusRunning

		blocked := false
		for _, hd := range holds[h] {
			if hd.acquired || hd.acq.At != p.Age {
				continue
			}
			if s.policy.Acquire(st, hd.acq.Resource) {
				hd.acquired = true
				publish(report.Transition{Kind: report.KindGranted, Tick: tick, Process: p.ID, Resource: hd.acq.Resource, Status: p.Status, Priority: p.Priority})
				continue
			}
			blocked = true
			st.Current = proc.None
			publish(report.Transition{Kind: report.KindBlocked, Tick: tick, Process: p.ID, Resource: hd.acq.Resource, Status: p.Status, Priority: p.Priority})
			break
		}
		if blocked {
			continue
		}
		if h != prev {
			s.notePreemption(st, prev, h, stats, publish, tick)
			publish(report.Transition{Kind: report.KindDispatched, Tick: tick, Process: p.ID, Resource: -1, Status: p.Status, Priority: p.Priority})
		}
		return h, nil
	}
}

// notePreemption records that the previously running process lost the CPU
// while still runnable.
func (s *Service) notePreemption(st *execution.State, prev, next proc.Handle, stats map[proc.Handle]*metrics, publish func(report.Transition), tick int) {
	if !prev.Valid() || prev == next {
		return
	}
	p := st.Arena.Get(prev)
	if p == nil || p.Status != proc.StatusReady {
		return
	}
	if stat := stats[prev]; stat != nil {
		stat.preemptions++
	}
	publish(report.Transition{Kind: report.KindPreempted, Tick: tick, Process: p.ID, Resource: -1, Status: p.Status, Priority: p.Priority})
}

// headWaiter returns the oldest waiter of the resource, proc.None when the
// wait queue is empty.
func (s *Service) headWaiter(st *execution.State, resourceID int) proc.Handle {
	r := st.Resources.Get(resourceID)
	if r == nil {
		return proc.None
	}
	if h, ok := r.Waiters.Peek(); ok {
		return h
	}
	return proc.None
}

// anyLive reports whether any admitted process has not exited yet.
func (s *Service) anyLive(st *execution.State) bool {
	for _, h := range st.Arena.Handles() {
		if st.Arena.Get(h).Status != proc.StatusExited {
			return true
		}
	}
	return false
}

// publisher returns the transition publish function, a no-op when no event
// service is attached.
func (s *Service) publisher(ctx context.Context, runID string) func(report.Transition) {
	if s.events == nil {
		return func(report.Transition) {}
	}
	publisher, err := event.PublisherOf[report.Transition](s.events)
	if err != nil {
		log.Printf("failed to resolve transition publisher: %v", err)
		return func(report.Transition) {}
	}
	policyName := s.policy.Name()
	return func(transition report.Transition) {
		eCtx := &event.Context{RunID: runID, Policy: policyName, Kind: string(transition.Kind)}
		if err := publisher.Publish(ctx, event.NewEvent(eCtx, transition)); err != nil {
			log.Printf("failed to publish transition event: %v", err)
		}
	}
}

func (s *Service) buildReport(runID string, wl *workload.Workload, st *execution.State, stats map[proc.Handle]*metrics, timeline []string, idleTicks int, stalled bool) *report.RunReport {
	ret := &report.RunReport{
		ID:        runID,
		Workload:  wl.Name,
		Policy:    s.policy.Name(),
		Ticks:     len(timeline),
		IdleTicks: idleTicks,
		Stalled:   stalled,
		Timeline:  timeline,
		CreatedAt: clock.Now(),
	}
	for _, h := range st.Arena.Handles() {
		p := st.Arena.Get(h)
		stat := stats[h]
		item := report.ProcessMetrics{
			ID:          p.ID,
			Arrival:     p.Arrival,
			Completion:  stat.completion,
			Turnaround:  -1,
			Waited:      stat.waited,
			Preemptions: stat.preemptions,
			Exited:      stat.exited,
		}
		if stat.exited {
			item.Turnaround = stat.completion - p.Arrival
		}
		ret.Processes = append(ret.Processes, item)
	}
	return ret
}
