// Package event distributes simulation transition events to interested
// consumers over the messaging queue. It is purely observational: the
// simulator core produces correct runs whether or not anything listens.
package event

import (
	"time"

	"github.com/viant/ticksim/internal/clock"
)

// Context carries the run-level coordinates of an event.
type Context struct {
	RunID  string `json:"runID"`
	Policy string `json:"policy"`
	Kind   string `json:"kind"`
}

// Event pairs a typed payload with its context.
type Event[T any] struct {
	Context   *Context  `json:"context"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data"`
}

// NewEvent creates an event for the given context and payload.
func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Data:      data,
	}
}
