package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// fifo runs processes to completion in arrival order. It never preempts a
// process that still has work and is not blocked.
type fifo struct {
	lifecycle
	fcfsArbiter
}

// NewFIFO creates the FIFO policy.
func NewFIFO() Policy { return &fifo{} }

func (fifo) Name() string { return "FIFO" }

func (fifo) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		return st.Current
	}
	h, ok := st.Ready.Pop()
	if !ok {
		return proc.None
	}
	return h
}
