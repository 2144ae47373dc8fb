package engine

import (
	"path"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Built-in directory exclusions: version-control metadata, dependency and
// vendor trees, build/output/cache directories, coverage and report output.
// A directory hit prunes the entire subtree before any work is scheduled
// under it.
var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"target":       true,
	"vendor":       true,
	"coverage":     true,
	"reports":      true,
	"bin":          true,
	"obj":          true,
}

// Built-in file exclusions: package-manager lockfiles.
var defaultExcludeFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"composer.lock":     true,
	"poetry.lock":       true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

// ShouldSkip decides whether a root-relative entry is excluded from
// scanning. Policy order, first match wins:
//  1. any path component equals a built-in excluded directory name
//  2. the entry is a file whose base name is a built-in excluded file
//  3. the entry is a file matching a user path rule, either as a glob
//     (full path or base name) or as a literal prefix after trimming a
//     trailing separator from the rule
//
// Directories are only subject to rule 1; files matching rules 2-3 are
// excluded individually without affecting sibling traversal.
func ShouldSkip(rel string, isDir bool, pathRules []string) bool {
	rel = filepath.ToSlash(rel)
	for _, part := range strings.Split(rel, "/") {
		if isDefaultDirExcluded(part) {
			return true
		}
	}
	if isDir {
		return false
	}
	if defaultExcludeFiles[path.Base(rel)] {
		return true
	}
	return matchesPathRule(rel, pathRules)
}

func matchesPathRule(rel string, rules []string) bool {
	for _, r := range rules {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if ok, _ := doublestar.Match(r, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(r, path.Base(rel)); ok {
			return true
		}
		if strings.HasPrefix(rel, strings.TrimSuffix(r, "/")) {
			return true
		}
	}
	return false
}
