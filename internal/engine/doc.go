// Package engine contains the core scanning pipeline: it traverses the scan
// root, prunes excluded paths, matches PII patterns per line, filters
// candidates through the allowlist, and returns findings in deterministic
// traversal order. This package is internal; external consumers should use
// the stable facade in pkg/core.
package engine
