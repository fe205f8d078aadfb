package ticksim

import (
	"log"

	"github.com/viant/ticksim/model/report"
	"github.com/viant/ticksim/runtime/execution"
	"github.com/viant/ticksim/scheduler"
	"github.com/viant/ticksim/service/dao"
	rmemory "github.com/viant/ticksim/service/dao/run/memory"
	dworkload "github.com/viant/ticksim/service/dao/workload"
	"github.com/viant/ticksim/service/event"
	"github.com/viant/ticksim/tracing"
)

// Service is the simulator facade: it owns the policy registry, the
// workload loader and the run report store, and hands out runtimes that
// execute workloads.
type Service struct {
	config          *Config
	registry        *scheduler.Registry
	workloads       *dworkload.Service
	workloadOptions []dworkload.Option
	runDAO          dao.Service[string, report.RunReport]
	events          *event.Service
	observer        func(*execution.Snapshot)
}

// New creates a simulator service with the supplied options.
func New(options ...Option) *Service {
	s := &Service{}
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.registry == nil {
		s.registry = scheduler.DefaultRegistry()
	}
	if s.workloads == nil {
		s.workloads = dworkload.New(s.workloadOptions...)
	}
	if s.runDAO == nil {
		s.runDAO = rmemory.New()
	}
	if s.config.Tracing.Enabled {
		if err := tracing.Init("ticksim", Version, s.config.Tracing.OutputFile); err != nil {
			log.Printf("failed to initialize tracing: %v", err)
		}
	}
	return s
}

// Registry returns the policy registry.
func (s *Service) Registry() *scheduler.Registry {
	return s.registry
}

// Runtime returns a runtime bound to this service.
func (s *Service) Runtime() *Runtime {
	return &Runtime{service: s}
}
