package inmemory

import (
	"testing"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("purchase")
	r.RecordSuccess("advance_turn")
	r.RecordRejection("purchase")
	r.RecordConflict()
	r.RecordFailure()

	s := r.Snapshot()
	if s.OpTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.OpTotal)
	}
	if s.OpSuccess != 2 {
		t.Fatalf("expected success 2, got %d", s.OpSuccess)
	}
	if s.OpRejection != 1 {
		t.Fatalf("expected rejection 1, got %d", s.OpRejection)
	}
	if s.OpConflict != 1 {
		t.Fatalf("expected conflict 1, got %d", s.OpConflict)
	}
	if s.OpFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.OpFailure)
	}
	if s.SuccessByOp["purchase"] != 1 {
		t.Fatalf("expected purchase success count 1")
	}
	if s.RejectByOp["purchase"] != 1 {
		t.Fatalf("expected purchase reject count 1")
	}
}
