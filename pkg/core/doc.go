// Package core provides a small, stable facade over the scanner's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "."}
//	findings, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
//	rep := core.BuildReport(findings, ".", time.Now())
//	_ = core.MarshalReport(os.Stdout, rep)
package core
