package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"relparse/internal/config"
	"relparse/internal/library"
	"relparse/internal/logging"
	"relparse/internal/release"
)

// ErrUnparseable marks a media file whose path could not be split into
// directory and file parts.
var ErrUnparseable = errors.New("path could not be parsed")

// Options tune a single run.
type Options struct {
	// Prune removes index entries under the root that this run did not see.
	Prune bool
}

// Failure pairs a path with the reason it was not indexed.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes one run.
type Result struct {
	Scan     *library.Scan
	Files    int
	Indexed  int
	Pruned   int64
	Failures []Failure
	Duration time.Duration
}

// Scanner indexes media files found under a root directory.
type Scanner struct {
	store      *library.Store
	parser     *release.Parser
	workers    int
	extensions map[string]struct{}
	logger     *slog.Logger
}

// New builds a scanner from cfg. Files are parsed with an episodic parser so
// season and episode numbers are found; each file's type is then settled by
// what was found.
func New(cfg *config.Config, store *library.Store, logger *slog.Logger) *Scanner {
	exts := make(map[string]struct{}, len(cfg.Scan.Extensions))
	for _, ext := range cfg.Scan.Extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	workers := cfg.Scan.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Scanner{
		store:      store,
		parser:     cfg.NewParser(release.KindTV),
		workers:    workers,
		extensions: exts,
		logger:     logging.NewComponentLogger(logger, "scan"),
	}
}

type parsed struct {
	path  string
	entry *library.Entry
	err   error
}

// Run walks root and indexes every media file under it. Per-file failures
// are collected in the result; Run itself fails only when the walk, the
// writer lock or the scan bookkeeping fails, or ctx is cancelled.
func (s *Scanner) Run(ctx context.Context, root string, opts Options) (*Result, error) {
	started := time.Now()
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q is not a directory", root)
	}

	unlock, err := s.store.AcquireWriter()
	if err != nil {
		return nil, err
	}
	defer func() { _ = unlock() }()

	files, err := s.collect(ctx, root)
	if err != nil {
		return nil, err
	}

	run, err := s.store.BeginScan(ctx, root)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithScanID(ctx, run.ID)
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("scan started",
		logging.String("root", root),
		logging.Int("files", len(files)),
		logging.Int("workers", s.workers),
	)

	result := &Result{Scan: run, Files: len(files)}
	results := make(chan parsed, s.workers)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.write(ctx, logger, results, result)
	}()

	workers := pool.New().WithMaxGoroutines(s.workers)
	for _, path := range files {
		workers.Go(func() {
			if ctx.Err() != nil {
				return
			}
			results <- s.parse(run.ID, path)
		})
	}
	workers.Wait()
	close(results)
	<-writerDone

	run.Files = result.Indexed
	run.Failures = len(result.Failures)
	if err := s.store.FinishScan(context.WithoutCancel(ctx), run); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("scan cancelled", logging.Int("indexed", result.Indexed))
		return result, err
	}

	if opts.Prune {
		pruned, err := s.store.Prune(ctx, root, run.ID)
		if err != nil {
			return result, err
		}
		result.Pruned = pruned
	}
	result.Duration = time.Since(started)
	logger.Info("scan finished",
		logging.Int("indexed", result.Indexed),
		logging.Int("failed", len(result.Failures)),
		logging.Int64("pruned", result.Pruned),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}

// collect lists media files under root in walk order. Hidden directories
// and files are skipped.
func (s *Scanner) collect(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if _, ok := s.extensions[strings.ToLower(filepath.Ext(name))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func (s *Scanner) parse(scanID, path string) parsed {
	info := s.parser.ParsePath(path)
	if info == nil {
		return parsed{path: path, err: ErrUnparseable}
	}
	entry, err := library.NewEntry(scanID, info)
	return parsed{path: path, entry: entry, err: err}
}

// write is the only goroutine that touches the index during a run.
func (s *Scanner) write(ctx context.Context, logger *slog.Logger, results <-chan parsed, result *Result) {
	sampler := logging.NewProgressSampler(10)
	done := 0
	for item := range results {
		done++
		err := item.err
		if err == nil {
			err = s.store.Upsert(ctx, item.entry)
		}
		if err != nil {
			result.Failures = append(result.Failures, Failure{Path: item.path, Err: err})
			logger.Warn("file not indexed", logging.String(logging.FieldPath, item.path), logging.Error(err))
		} else {
			result.Indexed++
			logger.Debug("file indexed",
				logging.String(logging.FieldPath, item.path),
				logging.String("title", item.entry.Title),
				logging.String("kind", string(item.entry.Kind)),
			)
		}
		if sampler.ShouldLog(done, result.Files) {
			logger.Info("scan progress", logging.Int("done", done), logging.Int("total", result.Files))
		}
	}
}
