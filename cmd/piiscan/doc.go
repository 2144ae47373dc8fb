// Package piiscan provides the command-line interface for the PII scanner.
// It configures subcommands (scan, allowlist, ci, completion), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/PeterH1998/webapp-privacy-scanner/cmd/piiscan"
//	func main() { piiscan.Execute() }
package piiscan
