package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ticksim/model/proc"
)

func TestState_Verify(t *testing.T) {
	var useCases = []struct {
		description string
		setup       func() *State
		expectErr   bool
	}{
		{
			description: "consistent state passes",
			setup: func() *State {
				st := NewState(1)
				st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
				st.Admit(&proc.Process{ID: 2, Lifespan: 3, Burst: 3})
				return st
			},
		},
		{
			description: "running process also queued",
			setup: func() *State {
				st := NewState(1)
				h := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
				st.Current = h
				st.Arena.Get(h).Status = proc.StatusRunning
				return st
			},
			expectErr: true,
		},
		{
			description: "waiting process absent from every wait queue",
			setup: func() *State {
				st := NewState(1)
				h := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
				st.Ready.Remove(h)
				p := st.Arena.Get(h)
				p.Status = proc.StatusWaiting
				p.WaitingOn = 0
				return st
			},
			expectErr: true,
		},
		{
			description: "resource owner in its own wait queue",
			setup: func() *State {
				st := NewState(1)
				h := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
				st.Ready.Remove(h)
				p := st.Arena.Get(h)
				p.Status = proc.StatusWaiting
				p.WaitingOn = 0
				r := st.Resources.Get(0)
				r.Owner = h
				r.Waiters.Push(h)
				return st
			},
			expectErr: true,
		},
		{
			description: "exited process still queued",
			setup: func() *State {
				st := NewState(1)
				h := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
				st.Arena.Get(h).Status = proc.StatusExited
				return st
			},
			expectErr: true,
		},
		{
			description: "negative remaining time",
			setup: func() *State {
				st := NewState(1)
				h := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
				st.Arena.Get(h).Remaining = -1
				return st
			},
			expectErr: true,
		},
	}

	for _, useCase := range useCases {
		err := useCase.setup().Verify()
		if useCase.expectErr {
			if assert.Error(t, err, useCase.description) {
				assert.ErrorIs(t, err, ErrInvariant, useCase.description)
			}
			continue
		}
		assert.NoError(t, err, useCase.description)
	}
}

func TestState_Admit(t *testing.T) {
	st := NewState(0)
	h := st.Admit(&proc.Process{ID: 7, Lifespan: 4, Burst: 4, Priority: 2})
	p := st.Arena.Get(h)
	assert.Equal(t, proc.StatusReady, p.Status)
	assert.Equal(t, 2, p.OriginalPriority)
	assert.Equal(t, -1, p.WaitingOn)
	assert.Equal(t, 4, p.Remaining)
	assert.True(t, st.Ready.Contains(h))
}

func TestState_Snapshot(t *testing.T) {
	st := NewState(1)
	h1 := st.Admit(&proc.Process{ID: 1, Lifespan: 3, Burst: 3})
	st.Admit(&proc.Process{ID: 2, Lifespan: 3, Burst: 3})
	st.Ready.Remove(h1)
	st.Current = h1
	st.Arena.Get(h1).Status = proc.StatusRunning
	st.Resources.Get(0).Owner = h1
	st.Ticks = 5

	snap := st.Snapshot()
	assert.Equal(t, 5, snap.Tick)
	assert.Equal(t, 1, snap.Current)
	assert.EqualValues(t, []int{2}, snap.Ready)
	assert.Equal(t, 2, len(snap.Processes))
	assert.Equal(t, 1, snap.Resources[0].Owner)
}
