// Package workload loads workload descriptions from YAML documents on any
// viant/afs capable storage.
package workload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	mworkload "github.com/viant/ticksim/model/workload"
	"gopkg.in/yaml.v3"
)

// Service resolves workload URLs against an optional base URL.
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// Option customises the workload service.
type Option func(s *Service)

// WithBaseURL sets the base URL relative workload locations resolve against.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = baseURL }
}

// WithFsOptions sets storage options passed to every download.
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.fsOptions = options }
}

// New creates a workload service.
func New(options ...Option) *Service {
	s := &Service{fs: afs.New()}
	for _, option := range options {
		option(s)
	}
	return s
}

// Load fetches, decodes and validates the workload at the given URL. A
// missing extension defaults to .yaml.
func (s *Service) Load(ctx context.Context, URL string) (*mworkload.Workload, error) {
	location := URL
	if s.baseURL != "" && !strings.Contains(URL, "://") && !filepath.IsAbs(URL) {
		location = strings.TrimSuffix(s.baseURL, "/") + "/" + URL
	}
	if filepath.Ext(location) == "" {
		location += ".yaml"
	}
	data, err := s.fs.DownloadWithURL(ctx, location, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load workload from %v: %w", location, err)
	}
	ret, err := s.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workload %v: %w", location, err)
	}
	if ret.Name == "" {
		base := filepath.Base(location)
		ret.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return ret, nil
}

// Decode unmarshals and validates a workload document.
func (s *Service) Decode(data []byte) (*mworkload.Workload, error) {
	ret := &mworkload.Workload{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	ret.Init()
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
