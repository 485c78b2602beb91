package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindPDFs walks root and returns the PDF files under it in lexical order,
// skipping hidden entries if requested. Unreadable entries are counted and
// recorded in Stats without stopping the walk.
func FindPDFs(root string, skipHidden bool) ([]string, Stats, error) {
	var stats Stats
	if strings.TrimSpace(root) == "" {
		return nil, stats, errors.New("root_path is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, stats, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		if !AllowedExt(filepath.Ext(root)) {
			return nil, stats, fmt.Errorf("not a pdf: %s", root)
		}
		stats.Scanned, stats.Matched = 1, 1
		return []string{root}, stats, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, walkErr.Error())
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if skipHidden && path != root && IsHidden(path) {
			stats.Skipped++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, stats, fmt.Errorf("walk: %w", err)
	}
	sort.Strings(paths)
	return paths, stats, nil
}
