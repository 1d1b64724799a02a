package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
)

var DefaultKValues = []int{1, 3, 5}

const (
	DefaultRelevanceThreshold = 1
	DefaultRuns               = 1
)

type Config struct {
	KValues            []int `json:"k_values"`
	RelevanceThreshold int   `json:"relevance_threshold"`
	WarmupRuns         int   `json:"warmup_runs"`
	Runs               int   `json:"runs"`
}

func DefaultConfig() Config {
	return Config{
		KValues:            DefaultKValues,
		RelevanceThreshold: DefaultRelevanceThreshold,
		Runs:               DefaultRuns,
	}
}

// MaxK is the largest cut-off, used as the retrieval depth.
func (c Config) MaxK() int {
	m := 0
	for _, k := range c.KValues {
		m = max(m, k)
	}
	return m
}

// Searcher is anything that ranks chunks for a query, such as rag.Retriever.
type Searcher interface {
	RetrieveK(ctx context.Context, query string, k int, filter map[string]string) ([]storage.Hit, error)
}

type QueryResult struct {
	QueryID string       `json:"query_id"`
	Engine  string       `json:"engine"`
	Scores  ScoreSet     `json:"scores"`
	Ranked  []string     `json:"ranked"`
	Hits    int          `json:"hits"`
	Latency LatencyStats `json:"latency"`
	Error   error        `json:"-"`
}

type Result struct {
	Suite      string                            `json:"suite"`
	Results    map[string]map[string]QueryResult `json:"results"` // [queryID][engine]
	QueryOrder []string                          `json:"query_order"`
	Engines    []string                          `json:"engines"`
	Config     Config                            `json:"config"`
}

type Runner struct {
	config Config
}

func NewRunner(cfg Config) *Runner {
	if len(cfg.KValues) == 0 {
		cfg.KValues = DefaultKValues
	}
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	return &Runner{config: cfg}
}

// Run executes every suite query against every engine. Query failures are recorded
// on the result and do not stop the run.
func (r *Runner) Run(ctx context.Context, s *Suite, engines map[string]Searcher) (*Result, error) {
	if len(engines) == 0 {
		return nil, fmt.Errorf("no engines to benchmark")
	}

	names := make([]string, 0, len(engines))
	for n := range engines {
		names = append(names, n)
	}
	sort.Strings(names)

	res := &Result{
		Suite:   s.Name,
		Results: make(map[string]map[string]QueryResult, len(s.Queries)),
		Engines: names,
		Config:  r.config,
	}

	for i := range s.Queries {
		q := &s.Queries[i]
		res.QueryOrder = append(res.QueryOrder, q.ID)
		res.Results[q.ID] = make(map[string]QueryResult, len(names))
		judgments := q.JudgmentMap()

		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			qr := r.runQuery(ctx, engines[name], q, s.MatchOn)
			qr.QueryID = q.ID
			qr.Engine = name
			if qr.Error == nil && len(judgments) > 0 {
				qr.Scores = ComputeAll(qr.Ranked, judgments, r.config.KValues, r.config.RelevanceThreshold)
			}
			if qr.Error != nil {
				slog.Warn("query failed", "query", q.ID, "engine", name, "error", qr.Error)
			}
			res.Results[q.ID][name] = qr
		}
	}
	return res, nil
}

func (r *Runner) runQuery(ctx context.Context, engine Searcher, q *Query, matchOn string) QueryResult {
	k := r.config.MaxK()
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = engine.RetrieveK(ctx, q.Text, k, q.Filter)
	}

	var latencies []time.Duration
	var last []storage.Hit
	var lastErr error
	ok := false
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		hits, err := engine.RetrieveK(ctx, q.Text, k, q.Filter)
		if err != nil {
			lastErr = err
			continue
		}
		latencies = append(latencies, time.Since(start))
		last, ok = hits, true
	}
	if !ok {
		return QueryResult{Error: lastErr}
	}

	return QueryResult{
		Ranked:  RankedKeys(last, matchOn),
		Hits:    len(last),
		Latency: ComputeLatencyStats(latencies),
	}
}

// RankedKeys maps hits to judgment keys, keeping the first rank of each key.
func RankedKeys(hits []storage.Hit, matchOn string) []string {
	out := make([]string, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		key := h.Document.ID
		if matchOn != "" && matchOn != MatchID {
			key = h.Document.Metadata[matchOn]
		}
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
