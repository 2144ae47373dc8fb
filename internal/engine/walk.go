package engine

import (
	"fmt"
	"io/fs"
	"mime"
	"path/filepath"
	"strings"
)

// collectTargets walks the tree and returns the root-relative paths of every
// scannable file in traversal order. filepath.WalkDir visits entries in
// lexical order, so the list is deterministic run-to-run. Excluded
// directories are pruned with SkipDir so the walk never descends into them.
//
// An error listing the root itself is fatal; errors below the root only
// skip the affected entry.
func collectTargets(cfg Config) ([]string, error) {
	var targets []string
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == cfg.Root {
				return fmt.Errorf("cannot list scan root %s: %w", cfg.Root, err)
			}
			cfg.Logger.Debug("skipping unreadable entry", "path", p, "error", err)
			return nil
		}
		rel, relErr := filepath.Rel(cfg.Root, p)
		if relErr != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if ShouldSkip(rel, true, cfg.PathRules) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ShouldSkip(rel, false, cfg.PathRules) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				cfg.Logger.Debug("skipping oversized file", "path", rel, "bytes", info.Size())
				return nil
			}
		}
		targets = append(targets, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// looksBinary reports whether content starts with NUL bytes typical of
// non-text files. Binary content contributes zero findings.
func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// looksNonTextMIME uses the file extension and a tiny header sniff to skip
// clearly non-text content (images, archives) that lacks NUL bytes early on.
func looksNonTextMIME(path string, b []byte) bool {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
			return true
		}
		if strings.Contains(ct, "zip") || strings.Contains(ct, "tar") || strings.Contains(ct, "gzip") {
			return true
		}
	}
	if len(b) >= 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n" {
		return true
	}
	if len(b) >= 2 && b[0] == 'P' && b[1] == 'K' {
		return true
	}
	return false
}
