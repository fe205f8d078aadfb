// Package fs implements a filesystem-backed run report store on top of
// viant/afs, so reports can land on a local directory or any supported
// cloud storage.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/ticksim/model/report"
	"github.com/viant/ticksim/service/dao"
	"github.com/viant/ticksim/service/dao/criteria"
)

// Service persists run reports as JSON documents under a base URL.
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ dao.Service[string, report.RunReport] = (*Service)(nil)

// New creates a report store rooted at baseURL.
func New(baseURL string) *Service {
	return &Service{baseURL: baseURL, fs: afs.New()}
}

func (s *Service) reportURL(id string) string {
	return url.Join(s.baseURL, id+".json")
}

// Save persists the report.
func (s *Service) Save(ctx context.Context, r *report.RunReport) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.ID == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report %v: %w", r.ID, err)
	}
	location := s.reportURL(r.ID)
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload report to %v: %w", location, err)
	}
	return nil
}

// Load retrieves a report by run id.
func (s *Service) Load(ctx context.Context, id string) (*report.RunReport, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	location := s.reportURL(id)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check report %v: %w", location, err)
	}
	if !exists {
		return nil, dao.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to download report %v: %w", location, err)
	}
	ret := &report.RunReport{}
	if err = json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %v: %w", location, err)
	}
	return ret, nil
}

// Delete removes a report.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.reportURL(id)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to check report %v: %w", location, err)
	}
	if !exists {
		return dao.ErrNotFound
	}
	return s.fs.Delete(ctx, location)
}

// List returns stored reports passing the filter parameters.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*report.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports under %v: %w", s.baseURL, err)
	}
	var out []*report.RunReport
	for _, object := range objects {
		if object.IsDir() || path.Ext(object.Name()) != ".json" {
			continue
		}
		data, err := s.fs.DownloadWithURL(ctx, object.URL())
		if err != nil {
			return nil, fmt.Errorf("failed to download report %v: %w", object.URL(), err)
		}
		ret := &report.RunReport{}
		if err = json.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report %v: %w", object.URL(), err)
		}
		if ret.ID == "" {
			ret.ID = strings.TrimSuffix(object.Name(), ".json")
		}
		if !criteria.FilterByPolicy(ret.Policy, parameters) {
			continue
		}
		out = append(out, ret)
	}
	return out, nil
}
