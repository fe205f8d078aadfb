package event

import (
	"context"
	"errors"
)

// Listener consumes events from a publisher in the background and hands them
// to a handler.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	cancel    context.CancelFunc
}

// NewListener creates a listener bound to the publisher.
func NewListener[T any](publisher *Publisher[T], handler func(*Event[T])) *Listener[T] {
	return &Listener[T]{publisher: publisher, handler: handler}
}

// Start begins consuming until Stop is called or ctx is cancelled.
func (l *Listener[T]) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	go func() {
		for {
			event, err := l.publisher.Consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				continue
			}
			l.handler(event)
		}
	}()
}

// Stop terminates consumption.
func (l *Listener[T]) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}
