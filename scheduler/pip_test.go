package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

func TestPIP_InheritanceAndRestore(t *testing.T) {
	st := execution.NewState(1)
	policy := NewPIP()

	holder := admitRunning(st, &proc.Process{ID: 1, Lifespan: 9, Burst: 9, Priority: 8})
	st.Arena.Get(holder).OriginalPriority = 8
	assert.True(t, policy.Acquire(st, 0))

	// A higher-priority requester blocks and the holder inherits its
	// priority.
	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 5, Burst: 5, Priority: 1})
	st.Ready.Remove(h2)
	st.Current = h2
	st.Arena.Get(h2).Status = proc.StatusRunning

	assert.False(t, policy.Acquire(st, 0))
	assert.Equal(t, 1, st.Arena.Get(holder).Priority)

	st.Current = holder
	assert.NoError(t, policy.Release(st, 0))
	assert.Equal(t, 8, st.Arena.Get(holder).Priority)
}

func TestPIP_ReleaseKeepsPriorityOwedToRemainingWaiters(t *testing.T) {
	st := execution.NewState(2)
	policy := NewPIP()

	holder := admitRunning(st, &proc.Process{ID: 1, Lifespan: 9, Burst: 9, Priority: 8})
	st.Arena.Get(holder).OriginalPriority = 8
	assert.True(t, policy.Acquire(st, 0))
	assert.True(t, policy.Acquire(st, 1))

	// Priority-4 process blocks on the second resource.
	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 5, Burst: 5, Priority: 4})
	st.Ready.Remove(h2)
	st.Current = h2
	st.Arena.Get(h2).Status = proc.StatusRunning
	assert.False(t, policy.Acquire(st, 1))
	assert.Equal(t, 4, st.Arena.Get(holder).Priority)

	// Priority-1 process blocks on the first resource.
	h3 := st.Admit(&proc.Process{ID: 3, Lifespan: 5, Burst: 5, Priority: 1})
	st.Ready.Remove(h3)
	st.Current = h3
	st.Arena.Get(h3).Status = proc.StatusRunning
	assert.False(t, policy.Acquire(st, 0))
	assert.Equal(t, 1, st.Arena.Get(holder).Priority)

	// Releasing the first resource sheds the priority-1 debt but keeps the
	// priority owed to the waiter of the still-held second resource.
	st.Current = holder
	assert.NoError(t, policy.Release(st, 0))
	assert.Equal(t, 4, st.Arena.Get(holder).Priority)

	st.Current = holder
	assert.NoError(t, policy.Release(st, 1))
	assert.Equal(t, 8, st.Arena.Get(holder).Priority)
}

func TestPIP_ChainedInheritance(t *testing.T) {
	st := execution.NewState(2)
	policy := NewPIP()

	// A owns resource 0 and waits on resource 1, which B owns.
	a := admitRunning(st, &proc.Process{ID: 1, Lifespan: 9, Burst: 9, Priority: 6})
	st.Arena.Get(a).OriginalPriority = 6
	assert.True(t, policy.Acquire(st, 0))

	b := st.Admit(&proc.Process{ID: 2, Lifespan: 9, Burst: 9, Priority: 7})
	st.Ready.Remove(b)
	st.Current = b
	pb := st.Arena.Get(b)
	pb.Status = proc.StatusRunning
	pb.OriginalPriority = 7
	assert.True(t, policy.Acquire(st, 1))

	st.Current = a
	st.Arena.Get(a).Status = proc.StatusRunning
	assert.False(t, policy.Acquire(st, 1))

	// C blocks on resource 0: the boost propagates through A to B.
	c := st.Admit(&proc.Process{ID: 3, Lifespan: 5, Burst: 5, Priority: 0})
	st.Ready.Remove(c)
	st.Current = c
	st.Arena.Get(c).Status = proc.StatusRunning
	assert.False(t, policy.Acquire(st, 0))

	assert.Equal(t, 0, st.Arena.Get(a).Priority)
	assert.Equal(t, 0, st.Arena.Get(b).Priority)
}
