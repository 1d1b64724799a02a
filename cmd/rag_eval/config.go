package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type cliConfig struct {
	SuitePath string
	Dir       string
	KValues   string
	Threshold int
	Warmup    int
	Runs      int
	Format    string
	Output    string
	EnvPath   string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/eval/retrieval_v1.yaml", "Path to retrieval suite YAML")
	flag.StringVar(&cfg.Dir, "dir", "", "Index this documents directory before evaluating")
	flag.StringVar(&cfg.KValues, "k", "1,3,5", "K values for metrics, comma-separated")
	flag.IntVar(&cfg.Threshold, "relevance", 1, "Minimum grade counted as relevant (0-3)")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured iterations (median latency used)")
	flag.StringVar(&cfg.Format, "format", "table", "Report format: table or json")
	flag.StringVar(&cfg.Output, "output", "", "Write the JSON report to this path")
	flag.StringVar(&cfg.EnvPath, "env", "cmd/rag_eval/.env", "Path to .env file")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseKValues() ([]int, error) {
	parts := strings.Split(c.KValues, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid k value %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("k value must be positive, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
