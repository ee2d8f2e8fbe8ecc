// Package engine orchestrates a single scan argument end to end: walking
// its source, classifying and deduplicating every file, and rolling the
// result up into the directory tree a reporter will render.
package engine

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"flocc/internal/aggregate"
	"flocc/internal/cache"
	"flocc/internal/classify"
	"flocc/internal/config"
	"flocc/internal/model"
	"flocc/internal/source"
)

// Options configures a scan of one or more arguments.
type Options struct {
	Git         bool
	RepoDir     string
	Workers     int
	DumpUnknown bool
	Cache       *cache.Store
	Logger      *slog.Logger
}

// Result is everything a reporter needs about one scanned argument.
type Result struct {
	RootLabel   string
	Root        *model.DirNode
	UnknownExts map[string]uint32
	Files       int64
	UniqueFiles int64
	Lines       int64
	Elapsed     time.Duration
}

// Engine runs scans with a shared configuration.
type Engine struct {
	opts Options
}

// New returns an Engine ready to scan arguments under opts.
func New(opts Options) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{opts: opts}
}

// Scan walks arg (a filesystem path, or a revision name when Options.Git
// is set) and returns its classified, deduplicated directory tree.
func (e *Engine) Scan(arg string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	walker, cfg := e.resolve(arg)

	tree := aggregate.NewTree(walker.Root())
	dedup := aggregate.NewDedupTable()
	unknownExts := make(map[string]uint32)
	var unknownMu sync.Mutex
	var filesSeen, uniqueFilesSeen, linesSeen int64

	tasks := make(chan source.Entry)
	var wg sync.WaitGroup
	for i := 0; i < e.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range tasks {
				e.processEntry(entry, cfg, tree, dedup, unknownExts, &unknownMu, runID, &filesSeen, &uniqueFilesSeen, &linesSeen)
			}
		}()
	}

	walkErr := walker.Walk(func(entry source.Entry) error {
		tasks <- entry
		return nil
	})
	close(tasks)
	wg.Wait()

	if walkErr != nil {
		return nil, walkErr
	}

	return &Result{
		RootLabel:   walker.Root(),
		Root:        tree.Root(),
		UnknownExts: unknownExts,
		Files:       atomic.LoadInt64(&filesSeen),
		UniqueFiles: atomic.LoadInt64(&uniqueFilesSeen),
		Lines:       atomic.LoadInt64(&linesSeen),
		Elapsed:     time.Since(start),
	}, nil
}

func (e *Engine) resolve(arg string) (source.Walker, config.Config) {
	if e.opts.Git {
		repoDir := e.opts.RepoDir
		if repoDir == "" {
			repoDir = "."
		}
		return &source.GitWalker{RepoDir: repoDir, Rev: arg}, config.Config{}
	}
	cfg, err := config.Load(arg)
	if err != nil {
		e.opts.Logger.Warn("skipping invalid config", "path", arg, "err", err)
		cfg = config.Config{}
	}
	return &source.FSWalker{Path: arg}, cfg
}

func (e *Engine) processEntry(
	entry source.Entry,
	cfg config.Config,
	tree *aggregate.Tree,
	dedup *aggregate.DedupTable,
	unknownExts map[string]uint32,
	unknownMu *sync.Mutex,
	runID string,
	filesSeen, uniqueFilesSeen, linesSeen *int64,
) {
	if cfg.Ignore.Matches(entry.Path) {
		return
	}

	unknownMu.Lock()
	kind := classify.ClassifyPath(entry.Path, unknownExts)
	unknownMu.Unlock()

	if override, ok := cfg.ResolveExtension(filepath.Ext(entry.Path)); ok {
		kind = override
	}
	if kind == model.Ignore {
		return
	}

	key := aggregate.KeyFor(entry.DedupKey, entry.Data)
	isDuplicate := dedup.Observe(key)

	var code, comment, whitespace uint32
	if classify.HasHandler(kind) {
		code, comment, whitespace = e.classifyWithCache(key, kind, entry.Data, runID)
	}

	atomic.AddInt64(filesSeen, 1)
	if !isDuplicate {
		atomic.AddInt64(uniqueFilesSeen, 1)
	}
	atomic.AddInt64(linesSeen, int64(code)+int64(comment)+int64(whitespace))

	tree.Insert(entry.Path, model.FileResult{
		Name:       filepath.Base(entry.Path),
		Kind:       kind,
		Code:       code,
		Comment:    comment,
		Whitespace: whitespace,
		Duplicate:  isDuplicate,
	})
}

func (e *Engine) classifyWithCache(key string, kind model.FileKind, data []byte, runID string) (code, comment, whitespace uint32) {
	if e.opts.Cache != nil {
		if c, cm, ws, ok := e.opts.Cache.Lookup(key, kind); ok {
			return c, cm, ws
		}
	}

	code, comment, whitespace = classify.Buffer(kind, data)

	if e.opts.Cache != nil {
		if err := e.opts.Cache.Store(key, kind, code, comment, whitespace, runID); err != nil {
			e.opts.Logger.Warn("cache store failed", "digest", key, "err", err)
		}
	}
	return code, comment, whitespace
}

// FormatTiming renders the files/s and lines/s summary line flocc prints
// after each argument, matching the reference tool's fixed-point formula:
// count*10000/millis gives ten times count-per-second, which is then
// rendered with one implied decimal digit.
func FormatTiming(files, lines int64, elapsed time.Duration) string {
	millis := elapsed.Milliseconds()
	if millis <= 0 {
		millis = 1
	}
	filesRate := files * 10000 / millis
	linesRate := lines * 10000 / millis
	seconds := float64(elapsed.Microseconds()) / 1e6
	return fmt.Sprintf(
		"T=%.3fs (%d.%d files/s, %d.%d lines/s)",
		seconds,
		filesRate/10, filesRate%10,
		linesRate/10, linesRate%10,
	)
}
