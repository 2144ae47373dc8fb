// Package gitmeta reads best-effort repository metadata for audit records.
// Everything here degrades to empty strings; a scan never depends on the
// root being a git repository.
package gitmeta

import (
	git "github.com/go-git/go-git/v5"
)

// Head returns the HEAD commit hash and branch name for the repository
// containing root. Empty strings are returned when root is not inside a
// repository or HEAD is detached from any branch.
func Head(root string) (commit, branch string) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ""
	}
	ref, err := repo.Head()
	if err != nil {
		return "", ""
	}
	commit = ref.Hash().String()
	if ref.Name().IsBranch() {
		branch = ref.Name().Short()
	}
	return commit, branch
}
