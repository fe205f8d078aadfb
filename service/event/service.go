package event

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/ticksim/service/messaging/memory"
)

// Service manages one publisher per payload type, each backed by its own
// in-memory queue.
type Service struct {
	mux            sync.RWMutex
	publishers     map[reflect.Type]any
	newQueueConfig func() memory.Config
}

// Option customises the event service.
type Option func(s *Service)

// WithQueueConfig sets the queue configuration used for new typed queues.
func WithQueueConfig(newConfig func() memory.Config) Option {
	return func(s *Service) {
		s.newQueueConfig = newConfig
	}
}

// New creates an event service.
func New(options ...Option) *Service {
	s := &Service{
		publishers:     make(map[reflect.Type]any),
		newQueueConfig: memory.DefaultConfig,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// PublisherOf returns the publisher for payload type T, creating it on first
// use.
func PublisherOf[T any](s *Service) (*Publisher[T], error) {
	if s == nil {
		return nil, fmt.Errorf("event service was nil")
	}
	key := reflect.TypeOf((*T)(nil)).Elem()
	s.mux.RLock()
	existing, ok := s.publishers[key]
	s.mux.RUnlock()
	if ok {
		return existing.(*Publisher[T]), nil
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if existing, ok = s.publishers[key]; ok {
		return existing.(*Publisher[T]), nil
	}
	publisher := NewPublisher[T](memory.NewQueue[Event[T]](s.newQueueConfig()))
	s.publishers[key] = publisher
	return publisher, nil
}
