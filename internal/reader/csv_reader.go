// Package reader turns tabular datasets into documents for the vector store.
package reader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type Record = map[string]string

type ParallelResult struct {
	Record Record
	Line   int
	Err    error
}

type CSVReader struct {
	reader io.Reader
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

// Read loads every row keyed by the header line.
func (cr *CSVReader) Read() ([]Record, error) {
	csvReader := csv.NewReader(cr.reader)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, toRecord(headers, row))
	}

	return records, nil
}

type job struct {
	row  []string
	line int
}

// ReadParallel streams rows through workerCount goroutines. Order is not preserved.
func (cr *CSVReader) ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelResult, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	out := make(chan ParallelResult)
	csvReader := csv.NewReader(cr.reader)
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, err
	}

	jobs := make(chan job, workerCount*2)
	var wg sync.WaitGroup

	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res := ParallelResult{Line: j.line}
					if len(j.row) != len(headers) {
						res.Err = fmt.Errorf("line %d: expected %d fields, got %d", j.line, len(headers), len(j.row))
					} else {
						res.Record = toRecord(headers, j.row)
					}
					select {
					case out <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)

		line := 1
		for {
			row, err := csvReader.Read()
			line++
			if err == io.EOF {
				return
			}
			if err != nil {
				slog.Error("Error reading CSV row", "line", line, "error", err)
				select {
				case out <- ParallelResult{Line: line, Err: err}:
					continue
				case <-ctx.Done():
					return
				}
			}
			select {
			case jobs <- job{row: row, line: line}:
			case <-ctx.Done():
				slog.Info("Context cancelled, stopping CSV read...")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

func toRecord(headers, row []string) Record {
	record := make(Record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			record[h] = row[i]
		}
	}
	return record
}
