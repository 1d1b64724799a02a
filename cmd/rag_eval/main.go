package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/evaluation/retrieval"
	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/factory"
	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if err := env.LoadDotEnv(os.Getenv("ENV"), cfg.EnvPath); err != nil {
		slog.Info("Continuing with existing environment variables", "error", err)
	}

	kValues, err := cfg.parseKValues()
	if err != nil {
		slog.Error("Invalid k values", "error", err)
		os.Exit(1)
	}
	if cfg.Format != "table" && cfg.Format != "json" {
		slog.Error("Unknown format", "format", cfg.Format)
		os.Exit(1)
	}

	suite, err := retrieval.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}
	backend, err := factory.New(ctx, storageCfg)
	if err != nil {
		slog.Error("Failed to create vector store", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	embeddingCfg, err := embedding.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load embedding configuration", "error", err)
		os.Exit(1)
	}
	embedder, err := embedding.NewFromConfig(ctx, embeddingCfg)
	if err != nil {
		slog.Error("Failed to create embedder", "error", err)
		os.Exit(1)
	}

	if cfg.Dir != "" {
		report, err := rag.NewPipeline(embedder, backend.Store).Run(ctx, cfg.Dir)
		if err != nil {
			slog.Error("Failed to index documents", "dir", cfg.Dir, "error", err)
			os.Exit(1)
		}
		slog.Info("Documents indexed", "dir", cfg.Dir, "files", report.Total, "chunks", report.Chunks)
	}

	engine := string(storageCfg.Type) + "/" + embedder.Model()
	engines := map[string]retrieval.Searcher{
		engine: rag.NewRetriever(embedder, backend.Store),
	}

	runner := retrieval.NewRunner(retrieval.Config{
		KValues:            kValues,
		RelevanceThreshold: cfg.Threshold,
		WarmupRuns:         cfg.Warmup,
		Runs:               max(cfg.Runs, 1),
	})
	result, err := runner.Run(ctx, suite, engines)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	outputReport(result, cfg)
}

func outputReport(result *retrieval.Result, cfg cliConfig) {
	rpt := retrieval.Generate(result)

	var err error
	if cfg.Format == "json" {
		err = retrieval.WriteJSON(rpt, os.Stdout)
	} else {
		err = retrieval.WriteTable(rpt, os.Stdout)
	}
	if err != nil {
		slog.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	if cfg.Output == "" {
		return
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		slog.Error("Failed to create report file", "path", cfg.Output, "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := retrieval.WriteJSON(rpt, f); err != nil {
		slog.Error("Failed to write JSON report", "error", err)
		os.Exit(1)
	}
	slog.Info("Report written", "path", cfg.Output)
}
