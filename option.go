package ticksim

import (
	"github.com/viant/ticksim/model/report"
	"github.com/viant/ticksim/runtime/execution"
	"github.com/viant/ticksim/scheduler"
	"github.com/viant/ticksim/service/dao"
	dworkload "github.com/viant/ticksim/service/dao/workload"
	"github.com/viant/ticksim/service/event"
)

// Option defines a functional option for the simulator service.
type Option func(s *Service)

// WithConfig sets the service configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithRegistry replaces the policy registry; use it to expose custom
// scheduling policies alongside the built-in ones.
func WithRegistry(registry *scheduler.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithRunDAO sets the run report store; the default keeps reports in
// memory.
func WithRunDAO(runDAO dao.Service[string, report.RunReport]) Option {
	return func(s *Service) {
		s.runDAO = runDAO
	}
}

// WithEventService attaches an event service; every state transition of
// every run is published to it.
func WithEventService(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}

// WithWorkloadOptions customises the workload loader, e.g. with a base URL
// workload names resolve against.
func WithWorkloadOptions(options ...dworkload.Option) Option {
	return func(s *Service) {
		s.workloadOptions = options
	}
}

// WithSnapshotObserver registers a callback invoked with a read-only state
// snapshot after every simulated tick.
func WithSnapshotObserver(observer func(*execution.Snapshot)) Option {
	return func(s *Service) {
		s.observer = observer
	}
}
