package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/typegen-go/internal/watch"
)

var (
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [spec-file...]",
	Short: "Regenerate catalogs when specification files change",
	Long: `Run dump, then watch the specification files and run it again whenever
they change. Takes the same flags as dump.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&dumpDir, "dir", "d", "", "output directory (default: [output] dir of typegen.toml)")
	watchCmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format (json, yaml, text)")
	watchCmd.Flags().StringSliceVarP(&dumpModules, "module", "m", nil, "modules to dump (repeatable)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "time to collect changes before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	patterns, err := specPatterns(args)
	if err != nil {
		return err
	}
	format := outputFormat(cmd, dumpFormat)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	spec, paths, err := loadSpec(patterns)
	if err != nil {
		return err
	}
	if err := dumpAll(ctx, spec, format); err != nil {
		return err
	}

	w, err := watch.New(watch.Config{
		Dirs:          watchDirs(patterns),
		Match:         patternMatcher(patterns),
		DebounceDelay: watchDebounce,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	w.Seed(paths...)

	if err := w.Start(ctx); err != nil {
		return err
	}

	for batch := range w.Batches() {
		logger.Info("Specification changed",
			"changed", batch.Changed,
			"removed", batch.Removed)

		spec, _, err := loadSpec(patterns)
		if err != nil {
			logger.Error("Failed to reload specification", "error", err)
			continue
		}
		if err := dumpAll(ctx, spec, format); err != nil {
			logger.Error("Failed to regenerate catalogs", "error", err)
		}
	}
	return nil
}

// watchDirs returns the directories holding the files of patterns.
func watchDirs(patterns []string) []string {
	var dirs []string
	for _, p := range patterns {
		dir := filepath.Dir(p)
		if hasMeta(p) {
			base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
			dir = filepath.FromSlash(base)
		}
		dir = filepath.Clean(dir)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// patternMatcher reports whether a changed path is one of the spec files.
func patternMatcher(patterns []string) func(string) bool {
	return func(path string) bool {
		if !watch.IsSpecFile(path) {
			return false
		}
		path = filepath.Clean(path)
		for _, p := range patterns {
			if !hasMeta(p) {
				if filepath.Clean(p) == path {
					return true
				}
				continue
			}
			if ok, err := doublestar.PathMatch(filepath.Clean(p), path); err == nil && ok {
				return true
			}
		}
		return false
	}
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
