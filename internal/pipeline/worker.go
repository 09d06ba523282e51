package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmcarver/mdimport/internal/convert"
	"github.com/jmcarver/mdimport/internal/docstore"
	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/frontmatter"
	"github.com/jmcarver/mdimport/internal/markdown"
	"github.com/jmcarver/mdimport/internal/token"
)

// Worker processes a single import job: front matter off, tokenize,
// convert, store.
type Worker struct {
	tokenizer token.Tokenizer
	docstore  *docstore.Client
	log       *slog.Logger
}

func NewWorker(tokenizer token.Tokenizer, ds *docstore.Client, log *slog.Logger) *Worker {
	return &Worker{
		tokenizer: tokenizer,
		docstore:  ds,
		log:       log,
	}
}

// Process runs the full import pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Split metadata and tokenize.
	job.SetStatus(StatusTokenizing, "tokenizing")
	meta, body := frontmatter.Split(job.FileData())

	title := job.Title
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = markdown.TitleFromFilename(job.Filename)
	}
	job.SetTitle(title)
	job.SetContentHash(ContentHashHex(body))

	tokens := w.tokenizer.Tokenize(body)

	// Phase 2: Convert to the editor document tree. Conversion never
	// fails: malformed streams degrade to best-effort output and empty
	// input yields the minimal valid document.
	job.SetStatus(StatusConverting, "converting")
	tree := convert.ToDocument(tokens)
	blocks := document.BlockCount(tree)
	job.SetCounts(len(tokens), blocks)
	log.Info("converted document", "tokens", len(tokens), "blocks", blocks)

	// Phase 3: Create the document, retrying transient failures.
	job.SetStatus(StatusStoring, "storing")
	req := docstore.CreateRequest{
		ID:          job.DocID,
		Title:       title,
		Content:     tree,
		Tags:        meta.Tags,
		Source:      "mdimport:" + job.Filename,
		ContentHash: job.ContentHash,
	}

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		_, lastErr = w.docstore.CreateDocument(ctx, req)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable store error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			lastErr = ctx.Err()
		}
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		log.Error("store failed", "error", lastErr)
		job.AddError(fmt.Sprintf("store: %s", lastErr))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	log.Info("import complete", "title", title)
	job.SetStatus(StatusCompleted, "done")
}
