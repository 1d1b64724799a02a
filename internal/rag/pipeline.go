package rag

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/genai-lab/internal/collector"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
)

const (
	defaultBatchSize = 32
	defaultWorkers   = 4
)

// Embedder turns texts into vectors.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// PipelineConfig defines how documents are batched while indexing.
type PipelineConfig struct {
	Name      string
	BatchSize int
	Workers   int
}

// Report counts what a pipeline run did. Total is every file seen.
type Report struct {
	New      int           `json:"new"`
	Updated  int           `json:"updated"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
	Removed  int           `json:"removed"`
	Total    int           `json:"total"`
	Chunks   int           `json:"chunks"`
	Duration time.Duration `json:"duration"`
}

type fileStatus int

const (
	statusSkipped fileStatus = iota
	statusNew
	statusUpdated
)

// Pipeline extracts files from a directory, splits and embeds them and loads the
// chunks into a store. Unchanged files are skipped on later runs.
type Pipeline struct {
	cfg      PipelineConfig
	loader   *Loader
	tracker  *Tracker
	embedder Embedder
	store    storage.Store

	// serialises indexing between Run and Watch
	mu sync.Mutex
}

type PipelineOption func(p *Pipeline)

func WithPipelineConfig(cfg PipelineConfig) PipelineOption {
	return func(p *Pipeline) {
		if cfg.Name != "" {
			p.cfg.Name = cfg.Name
		}
		if cfg.BatchSize > 0 {
			p.cfg.BatchSize = cfg.BatchSize
		}
		if cfg.Workers > 0 {
			p.cfg.Workers = cfg.Workers
		}
	}
}

func WithLoader(l *Loader) PipelineOption {
	return func(p *Pipeline) {
		p.loader = l
	}
}

func WithTracker(t *Tracker) PipelineOption {
	return func(p *Pipeline) {
		p.tracker = t
	}
}

func NewPipeline(embedder Embedder, store storage.Store, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		cfg: PipelineConfig{
			Name:      "rag-etl",
			BatchSize: defaultBatchSize,
			Workers:   defaultWorkers,
		},
		embedder: embedder,
		store:    store,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.loader == nil {
		p.loader = NewLoader()
	}
	if p.tracker == nil {
		p.tracker = NewTracker()
	}
	return p
}

func (p *Pipeline) Tracker() *Tracker {
	return p.tracker
}

// Run indexes every supported file under dir and drops chunks of tracked files
// that no longer exist.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Report, error) {
	start := time.Now()

	c := collector.NewFileCollector(dir, collector.WithWorkers(p.cfg.Workers))
	results, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	seen := make(map[string]struct{})
	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping collection", "pipeline", p.cfg.Name)
			return report, ctx.Err()
		case res, ok := <-results:
			if !ok {
				if err := p.removeMissing(ctx, dir, seen, report); err != nil {
					return report, err
				}
				report.Duration = time.Since(start)
				slog.Info("Pipeline run completed",
					"pipeline", p.cfg.Name,
					"new", report.New,
					"updated", report.Updated,
					"skipped", report.Skipped,
					"failed", report.Failed,
					"removed", report.Removed,
					"duration", report.Duration)
				return report, nil
			}

			report.Total++
			seen[res.Result.Path] = struct{}{}
			if res.Err != nil {
				report.Failed++
				slog.Error("Error reading document", "path", res.Result.Path, "error", res.Err)
				continue
			}

			status, chunks, err := p.index(ctx, res.Result)
			if err != nil {
				report.Failed++
				slog.Error("Error indexing document", "path", res.Result.Path, "error", err)
				continue
			}
			report.Chunks += chunks
			switch status {
			case statusNew:
				report.New++
			case statusUpdated:
				report.Updated++
			default:
				report.Skipped++
			}
		}
	}
}

// IndexFile reads and indexes a single file when its content changed.
func (p *Pipeline) IndexFile(ctx context.Context, path string) (bool, error) {
	file, err := collector.ReadSourceFile(path)
	if err != nil {
		return false, err
	}
	status, _, err := p.index(ctx, file)
	if err != nil {
		return false, err
	}
	return status != statusSkipped, nil
}

// RemoveFile deletes every chunk loaded from path.
func (p *Pipeline) RemoveFile(ctx context.Context, path string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := p.store.DeleteWhere(ctx, map[string]string{MetaSource: path})
	if err != nil {
		return 0, fmt.Errorf("remove chunks of %s: %w", path, err)
	}
	p.tracker.Remove(path)
	slog.Info("Document removed", "path", path, "chunks", n)
	return n, nil
}

func (p *Pipeline) index(ctx context.Context, file collector.SourceFile) (fileStatus, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.tracker.Changed(file.Path, file.Hash) {
		return statusSkipped, 0, nil
	}
	status := statusNew
	if p.tracker.Tracked(file.Path) {
		status = statusUpdated
	}

	docs, err := p.loader.Split(file)
	if err != nil {
		return status, 0, err
	}
	if _, err := p.store.DeleteWhere(ctx, map[string]string{MetaSource: file.Path}); err != nil {
		return status, 0, fmt.Errorf("replace chunks of %s: %w", file.Path, err)
	}

	for start := 0; start < len(docs); start += p.cfg.BatchSize {
		end := min(start+p.cfg.BatchSize, len(docs))
		if err := p.load(ctx, docs[start:end]); err != nil {
			return status, 0, err
		}
	}

	p.tracker.Update(file.Path, file.Hash)
	slog.Debug("Document indexed", "path", file.Path, "chunks", len(docs))
	return status, len(docs), nil
}

func (p *Pipeline) load(ctx context.Context, batch []storage.Document) error {
	texts := make([]string, len(batch))
	for i, d := range batch {
		texts[i] = d.Content
	}
	vecs, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}
	if len(vecs) != len(batch) {
		return fmt.Errorf("embed batch: got %d vectors for %d chunks", len(vecs), len(batch))
	}
	for i := range batch {
		batch[i].Embedding = vecs[i]
	}
	_, err = p.store.Add(ctx, batch)
	return err
}

func (p *Pipeline) removeMissing(ctx context.Context, dir string, seen map[string]struct{}, report *Report) error {
	for _, path := range p.tracker.Paths() {
		if _, ok := seen[path]; ok || !within(dir, path) {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if _, err := p.RemoveFile(ctx, path); err != nil {
			return err
		}
		report.Removed++
	}
	return nil
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
