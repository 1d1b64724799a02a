// Package main GenAI Lab API
// @title GenAI Lab API
// @version 1.0
// @description Chat, embeddings, vector search, RAG, tool calling and evaluation over pluggable model providers and vector stores
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/genai-lab/docs"
	"github.com/DjordjeVuckovic/genai-lab/internal/chat"
	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/evaluation"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/memory"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"github.com/DjordjeVuckovic/genai-lab/internal/router"
	"github.com/DjordjeVuckovic/genai-lab/internal/semantic"
	"github.com/DjordjeVuckovic/genai-lab/internal/server"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/factory"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/pg"
	"github.com/DjordjeVuckovic/genai-lab/internal/tools"
	pkgserver "github.com/DjordjeVuckovic/genai-lab/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(sCfg.LogLevel)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	health := pkgserver.NewCompositeHealthChecker()

	s := server.New(sCfg, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "GenAI Lab API is running")
	})

	ctx := s.Context()

	backend, err := factory.New(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create vector store", "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	health.Add("vector_store", backend.Health)

	embedder, err := embedding.NewFromConfig(ctx, &cfg.EmbeddingConfig)
	if err != nil {
		slog.Error("Failed to create embedding client", "error", err)
		os.Exit(1)
	}
	health.Add("embedding", embedding.NewHealthChecker(embedder))

	models, err := llm.NewFromConfig(ctx, &cfg.ChatConfig)
	if err != nil {
		slog.Error("Failed to create chat models", "error", err)
		os.Exit(1)
	}
	slog.Info("Chat models ready", "models", models.Keys(), "default", models.Default().Name())

	mem, closeMem, err := newMemory(ctx, cfg, backend)
	if err != nil {
		slog.Error("Failed to create chat memory", "error", err)
		os.Exit(1)
	}
	defer closeMem()

	prompts := prompt.NewLibrary()
	if cfg.PromptLibrary != "" {
		if err := prompts.LoadFile(cfg.PromptLibrary); err != nil {
			slog.Error("Failed to load prompt library", "path", cfg.PromptLibrary, "error", err)
			os.Exit(1)
		}
	}

	chatService := chat.NewService(models, mem,
		chat.WithHistoryWindow(cfg.MemoryConfig.Window),
		chat.WithPrompts(prompts))

	ragService := rag.NewService(embedder, backend.Store, models.Default(), cfg.RAGConfig.RetrieverOptions()...)
	pipeline := rag.NewPipeline(embedder, backend.Store,
		rag.WithLoader(rag.NewLoader(rag.WithChunkSize(cfg.RAGConfig.ChunkSize, cfg.RAGConfig.ChunkOverlap))))
	startPipeline(ctx, pipeline, cfg.RAGConfig)

	relevancy := evaluation.NewRelevancy(models.Default())
	facts := evaluation.NewFactChecking(models.Default())

	router.NewSimilarityRouter(s.Echo, embedder).Bind()
	router.NewDocumentRouter(s.Echo, semantic.NewIndex(embedder, backend.Store)).Bind()
	router.NewChatRouter(s.Echo, chatService).Bind()
	router.NewVisionRouter(s.Echo, chatService).Bind()
	if cfg.ChatConfig.Image != nil {
		imager, err := llm.NewImageModel(ctx, *cfg.ChatConfig.Image)
		if err != nil {
			slog.Error("Failed to create image model", "error", err)
			os.Exit(1)
		}
		router.NewImageRouter(s.Echo, imager).Bind()
		slog.Info("Image generation enabled", "model", imager.Name())
	}
	router.NewPromptRouter(s.Echo, prompts, chatService).Bind()
	router.NewToolRouter(s.Echo, tools.NewAgent(models.Default(), tools.NewBuiltinRegistry(time.Now))).Bind()
	router.NewRAGRouter(s.Echo, ragService,
		router.WithPipeline(pipeline, backend.Store, cfg.RAGConfig.DocumentsDir)).Bind()
	router.NewEvaluationRouter(s.Echo, relevancy, facts,
		evaluation.NewRAGEvaluator(ragService, relevancy, facts)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func newMemory(ctx context.Context, cfg *ApiConfig, backend *factory.Backend) (memory.Store, func(), error) {
	if cfg.MemoryConfig.Type != memory.PG {
		return memory.NewInMemStore(), func() {}, nil
	}

	pool := backend.Pool
	closeFn := func() {}
	if pool == nil {
		connStr, err := cfg.MemoryConfig.RequirePGConnString()
		if err != nil {
			return nil, nil, err
		}
		pool, err = pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: connStr})
		if err != nil {
			return nil, nil, err
		}
		closeFn = pool.Close
	}

	store := memory.NewPgStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}

// startPipeline indexes the documents directory once and optionally keeps watching it.
func startPipeline(ctx context.Context, pipeline *rag.Pipeline, cfg rag.Config) {
	if !cfg.AutoLoad {
		slog.Info("RAG auto load disabled")
		return
	}

	go func() {
		report, err := pipeline.Run(ctx, cfg.DocumentsDir)
		if err != nil {
			slog.Warn("Initial document load failed", "dir", cfg.DocumentsDir, "error", err)
			return
		}
		slog.Info("Documents loaded", "dir", cfg.DocumentsDir,
			"new", report.New, "updated", report.Updated, "skipped", report.Skipped,
			"failed", report.Failed, "chunks", report.Chunks)

		if !cfg.Watch {
			return
		}
		events, err := pipeline.Watch(ctx, cfg.DocumentsDir)
		if err != nil {
			slog.Warn("Failed to watch documents", "dir", cfg.DocumentsDir, "error", err)
			return
		}
		for ev := range events {
			if ev.Err != nil {
				slog.Warn("Document watch event failed", "path", ev.Path, "error", ev.Err)
				continue
			}
			slog.Info("Document change applied", "path", ev.Path, "action", ev.Action)
		}
	}()
}
