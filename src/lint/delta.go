package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/appna-io/apx-linter/src/logging"
)

// Delta detects files changed relative to a baseline branch.
type Delta struct {
	RootDir      string
	TargetBranch string
}

// ChangedFiles returns the slash-separated paths, relative to RootDir,
// that differ from the baseline: uncommitted and staged
// changes plus commits not on the target branch. It returns nil, not an
// empty set, when RootDir is not inside a git repository, meaning
// "no delta information, lint everything".
func (d *Delta) ChangedFiles(ctx context.Context) (map[string]bool, error) {
	log := logging.Get("delta")

	repo, err := git.PlainOpenWithOptions(d.RootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		log.Debug().Err(err).Str("dir", d.RootDir).Msg("not a git repository")
		return nil, nil
	}

	worktreeChanges, err := d.worktreeChanges(repo)
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}

	branchChanges, err := d.branchChanges(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("branch diff: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	base, err := filepath.Abs(d.RootDir)
	if err != nil {
		return nil, err
	}
	// EvalSymlinks keeps Rel honest on systems where the temp or home
	// directory is itself a symlink.
	repoRoot := wt.Filesystem.Root()
	if resolved, err := filepath.EvalSymlinks(repoRoot); err == nil {
		repoRoot = resolved
	}
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	changed := make(map[string]bool, len(worktreeChanges)+len(branchChanges))
	for _, set := range []map[string]bool{worktreeChanges, branchChanges} {
		for p := range set {
			rel, err := filepath.Rel(base, filepath.Join(repoRoot, filepath.FromSlash(p)))
			if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				continue
			}
			changed[filepath.ToSlash(rel)] = true
		}
	}

	log.Debug().Int("worktree", len(worktreeChanges)).Int("branch", len(branchChanges)).Msg("changed files")
	return changed, nil
}

// worktreeChanges returns files with uncommitted modifications (staged + unstaged).
func (d *Delta) worktreeChanges(repo *git.Repository) (map[string]bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}

	status, err := wt.Status()
	if err != nil {
		return nil, err
	}

	changed := make(map[string]bool)
	for path, s := range status {
		if s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
			continue
		}
		changed[path] = true
	}

	return changed, nil
}

// branchChanges returns files changed between HEAD and the target branch.
func (d *Delta) branchChanges(ctx context.Context, repo *git.Repository) (map[string]bool, error) {
	targetBranch := d.targetBranch(repo)

	headRef, err := repo.Head()
	if err != nil {
		// No commits yet; the worktree status covers everything.
		return nil, nil
	}

	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting HEAD commit: %w", err)
	}

	targetRef, err := repo.Reference(plumbing.NewBranchReferenceName(targetBranch), true)
	if err != nil {
		targetRef, err = repo.Reference(plumbing.NewRemoteReferenceName("origin", targetBranch), true)
		if err != nil {
			return nil, nil
		}
	}

	targetCommit, err := repo.CommitObject(targetRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting target commit: %w", err)
	}

	// On the target branch itself, diff HEAD against its parent so the
	// latest commit is still covered.
	if headCommit.Hash == targetCommit.Hash {
		if headCommit.NumParents() == 0 {
			return nil, nil
		}
		parent, err := headCommit.Parent(0)
		if err != nil {
			return nil, nil
		}
		targetCommit = parent
	}

	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, err
	}
	targetTree, err := targetCommit.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, targetTree, headTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, fmt.Errorf("diffing trees: %w", err)
	}

	changed := make(map[string]bool)
	for _, change := range changes {
		if name := changeName(change); name != "" {
			changed[name] = true
		}
	}

	return changed, nil
}

// targetBranch determines the branch to diff against.
func (d *Delta) targetBranch(repo *git.Repository) string {
	if d.TargetBranch != "" {
		return d.TargetBranch
	}

	ciVars := []string{
		"CI_MERGE_REQUEST_TARGET_BRANCH_NAME", // GitLab CI
		"GITHUB_BASE_REF",                     // GitHub Actions
		"BITBUCKET_PR_DESTINATION_BRANCH",     // Bitbucket
		"CHANGE_TARGET",                       // Jenkins
	}
	for _, v := range ciVars {
		if branch := os.Getenv(v); branch != "" {
			return branch
		}
	}

	// Symbolic ref, not resolved: the target name is what we want.
	if ref, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", "HEAD"), false); err == nil {
		const prefix = "refs/remotes/origin/"
		if target := ref.Target().String(); strings.HasPrefix(target, prefix) {
			return strings.TrimPrefix(target, prefix)
		}
	}

	return "main"
}

// changeName extracts the file path from a tree change. Deleted files are
// skipped; there is nothing left to lint.
func changeName(change *object.Change) string {
	action, err := change.Action()
	if err != nil {
		return ""
	}
	switch action {
	case merkletrie.Insert, merkletrie.Modify:
		return change.To.Name
	}
	return ""
}
