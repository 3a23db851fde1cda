package inmemory

import (
	"sync"
)

type Snapshot struct {
	OpTotal     uint64            `json:"op_total"`
	OpSuccess   uint64            `json:"op_success"`
	OpRejection uint64            `json:"op_rejection"`
	OpConflict  uint64            `json:"op_conflict"`
	OpFailure   uint64            `json:"op_failure"`
	SuccessByOp map[string]uint64 `json:"success_by_op"`
	RejectByOp  map[string]uint64 `json:"reject_by_op"`
}

type Recorder struct {
	mu        sync.Mutex
	success   uint64
	rejection uint64
	conflict  uint64
	failure   uint64
	successBy map[string]uint64
	rejectBy  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		successBy: map[string]uint64{},
		rejectBy:  map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.successBy[op]++
}

func (r *Recorder) RecordRejection(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejection++
	r.rejectBy[op]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		OpSuccess:   r.success,
		OpRejection: r.rejection,
		OpConflict:  r.conflict,
		OpFailure:   r.failure,
		OpTotal:     r.success + r.rejection + r.conflict + r.failure,
		SuccessByOp: make(map[string]uint64, len(r.successBy)),
		RejectByOp:  make(map[string]uint64, len(r.rejectBy)),
	}
	for k, v := range r.successBy {
		out.SuccessByOp[k] = v
	}
	for k, v := range r.rejectBy {
		out.RejectByOp[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
