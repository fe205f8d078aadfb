package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

func TestFIFO_Schedule(t *testing.T) {
	st := execution.NewState(0)
	policy := NewFIFO()
	h1 := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 3, Burst: 3})

	// Arrival order, and the current process keeps the CPU while runnable.
	got := policy.Schedule(st)
	assert.Equal(t, h1, got)
	st.Current = got
	st.Arena.Get(got).Status = proc.StatusRunning

	assert.Equal(t, h1, policy.Schedule(st))

	st.Arena.Get(h1).Age = 3
	st.Arena.Get(h1).Status = proc.StatusExited
	st.Current = proc.None
	assert.Equal(t, h2, policy.Schedule(st))
}

func TestSJF_PicksSmallestEstimate(t *testing.T) {
	st := execution.NewState(0)
	policy := NewSJF()
	st.Admit(&proc.Process{ID: 1, Lifespan: 5, Burst: 5})
	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 2, Burst: 2})
	st.Admit(&proc.Process{ID: 3, Lifespan: 2, Burst: 2})

	// Smallest estimate wins; a tie goes to the earliest queued process.
	got := policy.Schedule(st)
	assert.Equal(t, h2, got)
	assert.False(t, st.Ready.Contains(h2))

	// Non-preemptive: the running process is kept even when a shorter one
	// is ready.
	st.Current = got
	st.Arena.Get(got).Status = proc.StatusRunning
	st.Admit(&proc.Process{ID: 4, Lifespan: 1, Burst: 1})
	assert.Equal(t, h2, policy.Schedule(st))
}

func TestSRTF_PreemptsOnSmallerRemaining(t *testing.T) {
	st := execution.NewState(0)
	policy := NewSRTF()
	h1 := st.Admit(&proc.Process{ID: 1, Lifespan: 5, Burst: 5})

	got := policy.Schedule(st)
	assert.Equal(t, h1, got)
	st.Current = got
	p1 := st.Arena.Get(got)
	p1.Status = proc.StatusRunning
	p1.Age, p1.Remaining = 2, 3

	// A process with less remaining time takes the CPU away.
	h2 := st.Admit(&proc.Process{ID: 2, Lifespan: 2, Burst: 2})
	got = policy.Schedule(st)
	assert.Equal(t, h2, got)
	assert.Equal(t, proc.StatusReady, p1.Status)
	assert.True(t, st.Ready.Contains(h1))

	// A process with more remaining time does not.
	st.Ready.Remove(h2)
	st.Current = h2
	st.Arena.Get(h2).Status = proc.StatusRunning
	assert.Equal(t, h2, policy.Schedule(st))
}

func TestSRTF_Forked(t *testing.T) {
	st := execution.NewState(0)
	policy := NewSRTF()
	h := st.Arena.Add(&proc.Process{ID: 1, Lifespan: 4, Burst: 4})
	policy.(ForkAware).Forked(st, h)
	assert.Equal(t, 4, st.Arena.Get(h).Remaining)
}

func TestRoundRobin_Rotation(t *testing.T) {
	st := execution.NewState(0)
	policy := NewRoundRobin()
	st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
	st.Admit(&proc.Process{ID: 2, Lifespan: 3, Burst: 3})
	st.Admit(&proc.Process{ID: 3, Lifespan: 3, Burst: 3})

	var order []int
	for i := 0; i < 6; i++ {
		h := policy.Schedule(st)
		if !assert.True(t, h.Valid()) {
			return
		}
		p := st.Arena.Get(h)
		st.Current = h
		p.Status = proc.StatusRunning
		p.Age++
		order = append(order, p.ID)
	}
	assert.EqualValues(t, []int{1, 2, 3, 1, 2, 3}, order)
}

func TestRoundRobin_SingleProcess(t *testing.T) {
	st := execution.NewState(0)
	policy := NewRoundRobin()
	h := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})

	// With a single process the rotation is a no-op.
	got := policy.Schedule(st)
	assert.Equal(t, h, got)
	st.Current = got
	st.Arena.Get(got).Status = proc.StatusRunning
	assert.Equal(t, h, policy.Schedule(st))
	assert.Equal(t, 0, st.Ready.Len())
}

func TestSchedule_EmptyReady(t *testing.T) {
	for _, policy := range []Policy{NewFIFO(), NewSJF(), NewSRTF(), NewRoundRobin(), NewPriority(nil), NewPCP(), NewPIP()} {
		st := execution.NewState(0)
		assert.Equal(t, proc.None, policy.Schedule(st), policy.Name())
	}
}
