package main

import (
	"flag"
)

type cliConfig struct {
	Dir       string
	Watch     bool
	BatchSize int
	Workers   int
	ChunkSize int
	Overlap   int
	CSVPath   string
	Mapping   string
	EnvPath   string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Dir, "dir", "", "Documents directory (defaults to RAG_DOCUMENTS_DIR)")
	flag.BoolVar(&cfg.Watch, "watch", false, "Keep running and re-index files as they change")
	flag.IntVar(&cfg.BatchSize, "batch-size", 32, "Chunks embedded and stored per batch")
	flag.IntVar(&cfg.Workers, "workers", 4, "Concurrent batch loaders")
	flag.IntVar(&cfg.ChunkSize, "chunk-size", 0, "Chunk size in characters (defaults to RAG_CHUNK_SIZE)")
	flag.IntVar(&cfg.Overlap, "chunk-overlap", -1, "Chunk overlap in characters (defaults to RAG_CHUNK_OVERLAP)")
	flag.StringVar(&cfg.CSVPath, "csv", "", "Import rows of a CSV dataset instead of a documents directory")
	flag.StringVar(&cfg.Mapping, "mapping", "configs/mappings/faq.yaml", "Column mapping used with -csv")
	flag.StringVar(&cfg.EnvPath, "env", "cmd/ingest/.env", "Path to .env file")

	flag.Parse()
	return cfg
}
