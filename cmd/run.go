package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"flocc/internal/cache"
	"flocc/internal/engine"
	"flocc/internal/report"
	"flocc/internal/source"
)

// runOptions holds every root-command flag.
type runOptions struct {
	repo        string
	git         bool
	jsonPath    string
	dumpUnknown bool
	workers     int
	cacheDir    string
}

// run scans every argument (or a sensible default when none are given)
// and prints a table report per argument, optionally exporting the
// combined JSON report and a merged dump-unknown listing at the end. A
// bad argument is logged and skipped rather than aborting the whole run.
func run(cmd *cobra.Command, opts *runOptions, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	useGit := opts.git || opts.repo != ""
	repoDir := opts.repo
	if repoDir == "" {
		repoDir = "."
	}
	if len(args) == 0 {
		if useGit {
			args = []string{"HEAD"}
		} else {
			args = []string{"."}
		}
	}

	workers := opts.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var store *cache.Store
	if opts.cacheDir != "" {
		s, err := cache.Open(opts.cacheDir)
		if err != nil {
			return fmt.Errorf("flocc: %w", err)
		}
		defer s.Close()
		store = s
	}

	if useGit && !source.IsRepository(repoDir) {
		return fmt.Errorf("flocc: not a git repository: %s", repoDir)
	}

	eng := engine.New(engine.Options{
		Git:     useGit,
		RepoDir: repoDir,
		Workers: workers,
		Cache:   store,
		Logger:  logger,
	})

	out := cmd.OutOrStdout()
	mergedUnknown := make(map[string]uint32)
	var results []*engine.Result

	for _, arg := range args {
		result, err := eng.Scan(arg)
		if err != nil {
			logger.Warn("skipping argument", "argument", arg, "err", err)
			continue
		}
		results = append(results, result)

		if err := report.PrintTable(out, result); err != nil {
			logger.Warn("failed to print report", "argument", arg, "err", err)
			continue
		}
		for ext, n := range result.UnknownExts {
			mergedUnknown[ext] += n
		}
	}

	if opts.dumpUnknown && len(mergedUnknown) > 0 {
		report.PrintDumpUnknown(out, &engine.Result{UnknownExts: mergedUnknown})
	}

	if opts.jsonPath != "" {
		if err := report.WriteJSONFile(opts.jsonPath, results); err != nil {
			return fmt.Errorf("flocc: %w", err)
		}
		fmt.Fprintf(out, "JSON report written to %s\n", opts.jsonPath)
	}

	return nil
}
