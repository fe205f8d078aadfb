package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Value int
}

func TestQueue_PublishConsume(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx := context.Background()

	assert.NoError(t, queue.Publish(ctx, &payload{Value: 1}))
	assert.NoError(t, queue.Publish(ctx, &payload{Value: 2}))
	assert.Equal(t, 2, queue.Size())

	msg, err := queue.Consume(ctx)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 1, msg.T().Value)
	assert.NoError(t, msg.Ack())
	// A message can be settled only once.
	assert.Error(t, msg.Ack())

	msg, err = queue.Consume(ctx)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 2, msg.T().Value)
	assert.NoError(t, msg.Nack(nil))
	assert.Equal(t, 0, queue.Size())
}

func TestQueue_ConsumeHonoursContext(t *testing.T) {
	queue := NewQueue[payload](Config{QueueBuffer: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
