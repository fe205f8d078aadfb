package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

func TestPCP_CeilingBoostAndRestore(t *testing.T) {
	st := execution.NewState(1)
	st.Resources.SetCeilings([]int{2})
	policy := NewPCP()

	h := admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5, Priority: 5})
	st.Arena.Get(h).OriginalPriority = 5

	// Acquiring raises the holder to the resource ceiling.
	assert.True(t, policy.Acquire(st, 0))
	assert.Equal(t, 2, st.Arena.Get(h).Priority)

	// Releasing restores the original priority unconditionally.
	assert.NoError(t, policy.Release(st, 0))
	assert.Equal(t, 5, st.Arena.Get(h).Priority)
}

func TestPCP_NoBoostAboveCeiling(t *testing.T) {
	st := execution.NewState(1)
	st.Resources.SetCeilings([]int{2})
	policy := NewPCP()

	h := admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5, Priority: 1})
	st.Arena.Get(h).OriginalPriority = 1

	// A holder already better than the ceiling is left alone.
	assert.True(t, policy.Acquire(st, 0))
	assert.Equal(t, 1, st.Arena.Get(h).Priority)
}

func TestPCP_BlockedRequesterKeepsFCFSOrder(t *testing.T) {
	st := execution.NewState(1)
	st.Resources.SetCeilings([]int{0})
	policy := NewPCP()

	h1 := admitRunning(st, &proc.Process{ID: 1, Lifespan: 5, Burst: 5, Priority: 3})
	st.Arena.Get(h1).OriginalPriority = 3
	assert.True(t, policy.Acquire(st, 0))

	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 5, Burst: 5, Priority: 0})
	st.Ready.Remove(h2)
	st.Current = h2
	st.Arena.Get(h2).Status = proc.StatusRunning

	assert.False(t, policy.Acquire(st, 0))
	assert.Equal(t, proc.StatusWaiting, st.Arena.Get(h2).Status)
	assert.True(t, st.Resources.Get(0).Waiters.Contains(h2))
}
