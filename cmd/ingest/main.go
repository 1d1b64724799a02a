package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"github.com/DjordjeVuckovic/genai-lab/internal/reader"
	"github.com/DjordjeVuckovic/genai-lab/internal/semantic"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/factory"
	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

func main() {
	cfg := parseFlags()

	if err := env.LoadDotEnv(os.Getenv("ENV"), cfg.EnvPath); err != nil {
		slog.Info("Continuing with existing environment variables", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ragCfg, err := rag.LoadConfigFromEnv()
	if err != nil {
		slog.Error("failed to load RAG configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Dir != "" {
		ragCfg.DocumentsDir = cfg.Dir
	}
	if cfg.ChunkSize > 0 {
		ragCfg.ChunkSize = cfg.ChunkSize
	}
	if cfg.Overlap >= 0 {
		ragCfg.ChunkOverlap = cfg.Overlap
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("failed to load storage configuration", "error", err)
		os.Exit(1)
	}
	backend, err := factory.New(ctx, storageCfg)
	if err != nil {
		slog.Error("failed to create vector store", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	embeddingCfg, err := embedding.LoadConfigFromEnv()
	if err != nil {
		slog.Error("failed to load embedding configuration", "error", err)
		os.Exit(1)
	}
	embedder, err := embedding.NewFromConfig(ctx, embeddingCfg)
	if err != nil {
		slog.Error("failed to create embedder", "error", err)
		os.Exit(1)
	}

	if cfg.CSVPath != "" {
		if err := importCSV(ctx, cfg, semantic.NewIndex(embedder, backend.Store)); err != nil {
			slog.Error("failed to import dataset", "csv", cfg.CSVPath, "error", err)
			os.Exit(1)
		}
		return
	}

	pipeline := rag.NewPipeline(embedder, backend.Store,
		rag.WithPipelineConfig(rag.PipelineConfig{
			Name:      "ingest",
			BatchSize: cfg.BatchSize,
			Workers:   cfg.Workers,
		}),
		rag.WithLoader(rag.NewLoader(rag.WithChunkSize(ragCfg.ChunkSize, ragCfg.ChunkOverlap))),
	)

	report, err := pipeline.Run(ctx, ragCfg.DocumentsDir)
	if err != nil {
		slog.Error("failed to run pipeline", "dir", ragCfg.DocumentsDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Ingest finished",
		"dir", ragCfg.DocumentsDir,
		"new", report.New,
		"updated", report.Updated,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"removed", report.Removed,
		"chunks", report.Chunks,
		"duration", report.Duration)

	if !cfg.Watch {
		if report.Failed > 0 {
			os.Exit(1)
		}
		return
	}

	events, err := pipeline.Watch(ctx, ragCfg.DocumentsDir)
	if err != nil {
		slog.Error("failed to watch documents", "error", err)
		os.Exit(1)
	}
	slog.Info("Watching for changes", "dir", ragCfg.DocumentsDir)
	for ev := range events {
		if ev.Err != nil {
			slog.Warn("Change failed", "path", ev.Path, "action", ev.Action, "error", ev.Err)
			continue
		}
		slog.Info("Change applied", "path", ev.Path, "action", ev.Action)
	}
	slog.Info("Watcher stopped")
}

func importCSV(ctx context.Context, cfg cliConfig, index *semantic.Index) error {
	mapping, err := reader.LoadMappingFile(cfg.Mapping)
	if err != nil {
		return err
	}
	f, err := os.Open(cfg.CSVPath)
	if err != nil {
		return err
	}
	defer f.Close()

	importer := reader.NewImporter(mapping, index,
		reader.WithBatchSize(cfg.BatchSize),
		reader.WithWorkers(cfg.Workers),
	)
	report, err := importer.Import(ctx, f)
	if err != nil {
		return err
	}
	slog.Info("Import finished",
		"dataset", mapping.Dataset,
		"rows", report.Rows,
		"imported", report.Imported,
		"failed", report.Failed,
		"duration", report.Duration)
	return nil
}
