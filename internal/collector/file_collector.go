package collector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultWorkers = 4

var DefaultExtensions = []string{".md", ".txt"}

// SourceFile is a document file read from disk with its content hash.
type SourceFile struct {
	Path    string
	Hash    string
	Content []byte
}

// FileCollector walks a directory and reads every supported file in parallel.
type FileCollector struct {
	dir        string
	extensions []string
	workers    int
}

type FileCollectorOption func(*FileCollector)

func WithExtensions(exts ...string) FileCollectorOption {
	return func(c *FileCollector) {
		c.extensions = exts
	}
}

func WithWorkers(n int) FileCollectorOption {
	return func(c *FileCollector) {
		if n > 0 {
			c.workers = n
		}
	}
}

func NewFileCollector(dir string, opts ...FileCollectorOption) *FileCollector {
	c := &FileCollector{
		dir:        dir,
		extensions: DefaultExtensions,
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Supported reports whether path has one of the collector's extensions.
func (c *FileCollector) Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (c *FileCollector) Collect(ctx context.Context) (<-chan Result[SourceFile], error) {
	info, err := os.Stat(c.dir)
	if err != nil {
		return nil, fmt.Errorf("documents directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("documents directory: %s is not a directory", c.dir)
	}

	out := make(chan Result[SourceFile])
	jobs := make(chan string, c.workers*2)
	var wg sync.WaitGroup

	wg.Add(c.workers)
	for w := 0; w < c.workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-jobs:
					if !ok {
						return
					}
					file, err := ReadSourceFile(path)
					res := Result[SourceFile]{Result: file, Err: err}
					if err != nil {
						res.Result = SourceFile{Path: path}
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

		err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Warn("Skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if d.IsDir() || !c.Supported(path) {
				return nil
			}
			select {
			case jobs <- path:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			slog.Info("Directory walk stopped", "dir", c.dir, "error", err)
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

// ReadSourceFile reads path and hashes its content with SHA-256.
func ReadSourceFile(path string) (SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return SourceFile{}, err
	}
	return SourceFile{Path: path, Hash: HashContent(content), Content: content}, nil
}

func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
