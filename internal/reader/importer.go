package reader

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
)

type DocumentAdder interface {
	AddDocuments(ctx context.Context, docs []storage.Document) ([]string, error)
}

type ImportReport struct {
	Rows     int
	Imported int
	Failed   int
	Duration time.Duration
}

type Importer struct {
	mapping   *DocumentMapping
	adder     DocumentAdder
	batchSize int
	workers   int
}

type ImporterOption func(*Importer)

func WithBatchSize(n int) ImporterOption {
	return func(i *Importer) {
		if n > 0 {
			i.batchSize = n
		}
	}
}

func WithWorkers(n int) ImporterOption {
	return func(i *Importer) {
		if n > 0 {
			i.workers = n
		}
	}
}

func NewImporter(mapping *DocumentMapping, adder DocumentAdder, opts ...ImporterOption) *Importer {
	i := &Importer{mapping: mapping, adder: adder, batchSize: 32, workers: 4}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import maps every CSV row and adds the documents in batches. Row errors are
// counted and logged; a failed batch aborts the import.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := NewCSVReader(r).ReadParallel(ctx, i.workers)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}
	batch := make([]storage.Document, 0, i.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		ids, err := i.adder.AddDocuments(ctx, batch)
		if err != nil {
			return err
		}
		report.Imported += len(ids)
		batch = batch[:0]
		return nil
	}

	for res := range results {
		report.Rows++
		if res.Err != nil {
			report.Failed++
			slog.Warn("Skipping unreadable row", "line", res.Line, "error", res.Err)
			continue
		}
		doc, err := i.mapping.Map(res.Record)
		if err != nil {
			var me *MappingError
			if errors.As(err, &me) {
				me.Line = res.Line
			}
			report.Failed++
			slog.Warn("Skipping unmapped row", "line", res.Line, "error", err)
			continue
		}
		batch = append(batch, doc)
		if len(batch) >= i.batchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	if err := flush(); err != nil {
		return report, err
	}

	report.Duration = time.Since(start)
	return report, nil
}
