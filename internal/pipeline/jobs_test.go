package pipeline

import (
	"strings"
	"testing"
	"time"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	if ContentHashHex([]byte("aaa")) == ContentHashHex([]byte("bbb")) {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewDocID_Format(t *testing.T) {
	id := NewDocID()
	if len(id) != 26 {
		t.Fatalf("expected 26-character ULID, got %d: %q", len(id), id)
	}
	const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	for _, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("unexpected character %q in ULID %q", c, id)
		}
	}
}

func TestNewDocID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewDocID()
		if seen[id] {
			t.Fatalf("duplicate ULID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusTokenizing, "tokenizing"},
		{StatusConverting, "converting"},
		{StatusStoring, "storing"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		job.SetStatus(tr.status, tr.phase)
		snap := job.Snapshot()
		if snap.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, snap.Status)
		}
		if snap.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, snap.Phase)
		}
	}
}

func TestJob_SnapshotIsolation(t *testing.T) {
	job := &Job{ID: "test-2", Status: StatusQueued}
	job.SetCounts(10, 4)
	snap := job.Snapshot()

	job.SetCounts(99, 99)
	if snap.Progress.Tokens != 10 || snap.Progress.Blocks != 4 {
		t.Errorf("snapshot mutated by later updates: %+v", snap.Progress)
	}
	if snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	job := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)}
	store.Put(job)
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job retained")
	}
}

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: "test-3"}
	job.AddError("first")
	job.AddError("second")
	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 || snap.Progress.Errors[1] != "second" {
		t.Errorf("unexpected errors: %v", snap.Progress.Errors)
	}
}
