package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// admitRunning admits the process and puts it on the CPU.
func admitRunning(st *execution.State, p *proc.Process) proc.Handle {
	h := st.Admit(p)
	st.Ready.Remove(h)
	st.Current = h
	p.Status = proc.StatusRunning
	return h
}

func TestAcquireFCFS(t *testing.T) {
	st := execution.NewState(1)
	h1 := admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5})

	assert.True(t, acquireFCFS(st, 0))
	assert.Equal(t, h1, st.Resources.Get(0).Owner)

	// A second requester blocks at the tail of the wait queue.
	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 5, Burst: 5})
	st.Ready.Remove(h2)
	st.Current = h2
	p2 := st.Arena.Get(h2)
	p2.Status = proc.StatusRunning

	assert.False(t, acquireFCFS(st, 0))
	assert.Equal(t, proc.StatusWaiting, p2.Status)
	assert.Equal(t, 0, p2.WaitingOn)
	assert.True(t, st.Resources.Get(0).Waiters.Contains(h2))
	assert.Equal(t, h1, st.Resources.Get(0).Owner)
}

func TestReleaseFCFS_WakesOldestWaiter(t *testing.T) {
	st := execution.NewState(1)
	h1 := admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5})
	assert.True(t, acquireFCFS(st, 0))

	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 5, Burst: 5})
	h3 := st.Admit(&proc.Process{ID: 3, Lifespan: 5, Burst: 5})
	for _, h := range []proc.Handle{h2, h3} {
		st.Ready.Remove(h)
		st.Current = h
		st.Arena.Get(h).Status = proc.StatusRunning
		assert.False(t, acquireFCFS(st, 0))
	}

	st.Current = h1
	assert.NoError(t, releaseFCFS(st, 0))

	r := st.Resources.Get(0)
	// Ownership is cleared, not transferred: the woken process re-attempts
	// acquisition when it next runs.
	assert.False(t, r.Held())
	p2 := st.Arena.Get(h2)
	assert.Equal(t, proc.StatusReady, p2.Status)
	assert.Equal(t, -1, p2.WaitingOn)
	assert.True(t, st.Ready.Contains(h2))
	// The younger waiter stays blocked.
	assert.Equal(t, proc.StatusWaiting, st.Arena.Get(h3).Status)
	assert.True(t, r.Waiters.Contains(h3))
}

func TestReleaseFCFS_NonOwner(t *testing.T) {
	st := execution.NewState(1)
	h1 := admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5})
	assert.True(t, acquireFCFS(st, 0))

	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 5, Burst: 5})
	st.Ready.Remove(h2)
	st.Current = h2
	st.Arena.Get(h2).Status = proc.StatusRunning

	err := releaseFCFS(st, 0)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, h1, st.Resources.Get(0).Owner)
}

func TestReleaseFCFS_UnknownResource(t *testing.T) {
	st := execution.NewState(1)
	admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5})
	err := releaseFCFS(st, 7)
	assert.ErrorIs(t, err, ErrUnknownResource)
}
