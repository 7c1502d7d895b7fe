package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veracify/veracify/app/analysis"
	"github.com/veracify/veracify/app/api"
	"github.com/veracify/veracify/app/cfg"
	"github.com/veracify/veracify/app/database"
	"github.com/veracify/veracify/app/evidence"
	"github.com/veracify/veracify/app/ingest"
	"github.com/veracify/veracify/app/lexicon"
	"github.com/veracify/veracify/app/model"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Veracify server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to connect to database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	lex := lexicon.Default()
	if appCfg.LexiconPath != "" {
		lex, err = lexicon.Load(appCfg.LexiconPath)
		if err != nil {
			slog.Error("Failed to load lexicon", "path", appCfg.LexiconPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Lexicon overrides loaded", "path", appCfg.LexiconPath)
	}

	// The model artifact is optional. Without it every request takes the
	// keyword heuristic path.
	var modelHandle analysis.ModelHandle
	if handle, err := model.Load(appCfg.ModelPath); err != nil {
		slog.Warn("Model artifact unavailable, using keyword heuristic",
			"path", appCfg.ModelPath, "error", err)
	} else {
		modelHandle = handle
		slog.Info("Model artifact loaded", "path", appCfg.ModelPath)
	}

	var provider evidence.Provider = evidence.NewStaticProvider()
	if appCfg.EvidenceFeedURL != "" {
		provider = evidence.NewFeedProvider(appCfg.EvidenceFeedURL, appCfg.UserAgent)
		slog.Info("Evidence provider configured", "feed_url", appCfg.EvidenceFeedURL)
	}

	pipeline := analysis.NewPipeline(
		analysis.NewDigestBuilder(appCfg.SummarySentences, appCfg.MaxBodyWords),
		analysis.NewClassifier(lex, modelHandle),
		analysis.NewSignalAnalyzer(lex),
		provider,
		appCfg.MaxEvidenceSources)

	historyRepo := database.NewHistoryRepository(db)
	feedbackRepo := database.NewFeedbackRepository(db)

	handler := api.NewHandler(pipeline, ingest.NewNormalizer(),
		ingest.NewScraper(appCfg.UserAgent), ingest.NewTesseractCLI(),
		provider, historyRepo, feedbackRepo, appCfg.MaxEvidenceSources,
		modelHandle != nil)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
