package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmcarver/mdimport/internal/api"
	"github.com/jmcarver/mdimport/internal/config"
	"github.com/jmcarver/mdimport/internal/docstore"
	"github.com/jmcarver/mdimport/internal/markdown"
	"github.com/jmcarver/mdimport/internal/pipeline"
	"github.com/jmcarver/mdimport/internal/token"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients and the tokenizer.
	ds := docstore.NewClient(cfg.DocstoreURL, cfg.DocstoreAPIKey)
	tokenizer := markdown.New(token.Options{
		AllowRawHTML:             cfg.AllowRawHTML,
		AutolinkBareURLs:         cfg.AutolinkBareURLs,
		TypographicSubstitutions: cfg.TypographicSubstitutions,
	})

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, tokenizer, ds, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, tokenizer, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		ds.Close()
	}()

	log.Info("starting mdimport", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
