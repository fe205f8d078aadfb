// Package memory implements an in-memory, thread-safe store for run
// reports.
package memory

import (
	"context"
	"sync"

	"github.com/viant/ticksim/model/report"
	"github.com/viant/ticksim/service/dao"
	"github.com/viant/ticksim/service/dao/criteria"
)

// Service stores run reports keyed by run id.
type Service struct {
	reports map[string]*report.RunReport
	mux     sync.RWMutex
}

var _ dao.Service[string, report.RunReport] = (*Service)(nil)

// New creates an empty store.
func New() *Service {
	return &Service{reports: map[string]*report.RunReport{}}
}

// Save persists the report.
func (s *Service) Save(_ context.Context, r *report.RunReport) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.ID == "" {
		return dao.ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.reports[r.ID] = r
	return nil
}

// Load retrieves a report by run id.
func (s *Service) Load(_ context.Context, id string) (*report.RunReport, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	s.mux.RLock()
	defer s.mux.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return r, nil
}

// Delete removes a report.
func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.reports[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

// List returns reports passing the supplied filter parameters.
func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*report.RunReport, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	out := make([]*report.RunReport, 0, len(s.reports))
	for _, r := range s.reports {
		if !criteria.FilterByPolicy(r.Policy, parameters) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
