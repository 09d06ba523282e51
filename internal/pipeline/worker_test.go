package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmcarver/mdimport/internal/docstore"
	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/markdown"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestJob(filename string, data []byte) *Job {
	job := &Job{ID: "job-1", DocID: "doc-1", Status: StatusQueued, Filename: filename}
	job.SetFileData(data)
	return job
}

func TestWorker_ProcessSuccess(t *testing.T) {
	var received docstore.CreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/documents" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode create request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(docstore.Document{ID: received.ID, Title: received.Title})
	}))
	defer srv.Close()

	ds := docstore.NewClient(srv.URL, "test-key")
	w := NewWorker(markdown.NewDefault(), ds, discardLogger())

	src := []byte("---\ntitle: From Meta\ntags: [notes]\n---\n# Hi\n\nbody text\n")
	job := newTestJob("notes.md", src)
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q (errors: %v)", snap.Status, snap.Progress.Errors)
	}
	if snap.Title != "From Meta" {
		t.Errorf("expected title from front matter, got %q", snap.Title)
	}
	if snap.Progress.Blocks == 0 || snap.Progress.Tokens == 0 {
		t.Errorf("expected non-zero counts, got %+v", snap.Progress)
	}
	if snap.ContentHash == "" {
		t.Error("expected content hash recorded")
	}

	if received.ID != "doc-1" || received.Title != "From Meta" {
		t.Errorf("unexpected create request: %+v", received)
	}
	if received.Content.Type != document.TypeDoc || len(received.Content.Content) == 0 {
		t.Errorf("expected a non-empty doc in the create request, got %+v", received.Content)
	}
	if len(received.Tags) != 1 || received.Tags[0] != "notes" {
		t.Errorf("expected tags carried through, got %v", received.Tags)
	}
}

func TestWorker_TitleFallsBackToFilename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(docstore.Document{})
	}))
	defer srv.Close()

	w := NewWorker(markdown.NewDefault(), docstore.NewClient(srv.URL, "k"), discardLogger())
	job := newTestJob("Weekly Report.md", []byte("no front matter here\n"))
	w.Process(context.Background(), job)

	if got := job.Snapshot().Title; got != "Weekly Report" {
		t.Errorf("expected filename-derived title, got %q", got)
	}
}

func TestWorker_StoreFailureFailsJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Non-retryable client error: the worker must not retry.
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	w := NewWorker(markdown.NewDefault(), docstore.NewClient(srv.URL, "k"), discardLogger())
	job := newTestJob("notes.md", []byte("# Hi\n"))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", snap.Status)
	}
	if len(snap.Progress.Errors) == 0 {
		t.Error("expected an error recorded on the job")
	}
}

func TestWorker_EmptyFileStillCreatesDocument(t *testing.T) {
	var received docstore.CreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(docstore.Document{})
	}))
	defer srv.Close()

	w := NewWorker(markdown.NewDefault(), docstore.NewClient(srv.URL, "k"), discardLogger())
	job := newTestJob("empty.md", nil)
	w.Process(context.Background(), job)

	if got := job.Snapshot().Status; got != StatusCompleted {
		t.Fatalf("expected completed for empty input, got %q", got)
	}
	if len(received.Content.Content) != 1 || received.Content.Content[0].Type != document.TypeParagraph {
		t.Errorf("expected the empty-document fallback, got %+v", received.Content)
	}
}
