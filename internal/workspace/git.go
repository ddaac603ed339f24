package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/system"
)

// Git inspects git checkouts.
type Git struct {
	exec system.CommandExecutor
	fs   system.FileSystem
}

// NewGit returns a Git using exec for git invocations and fs for lookups.
func NewGit(exec system.CommandExecutor, fs system.FileSystem) *Git {
	return &Git{exec: exec, fs: fs}
}

// Worktree describes a linked worktree of some main checkout.
type Worktree struct {
	// Path is the top level of the worktree.
	Path string

	// Parent is the main checkout the worktree belongs to.
	Parent string

	// Branch is the checked out branch, empty on a detached HEAD.
	Branch string

	// Head is the commit HEAD points at.
	Head string
}

// Detached reports whether the worktree is on a detached HEAD.
func (w *Worktree) Detached() bool {
	return w.Branch == ""
}

// IsRepo reports whether path holds a .git entry. It can be a directory
// (main checkout) or a file (linked worktree).
func (g *Git) IsRepo(path string) bool {
	return g.fs.Exists(filepath.Join(path, ".git"))
}

// IsMainCheckout reports whether path has a .git directory of its own.
func (g *Git) IsMainCheckout(path string) bool {
	return g.fs.IsDir(filepath.Join(path, ".git"))
}

// Locate resolves the linked worktree dir belongs to. It fails when dir is
// outside any repository or is the main checkout.
func (g *Git) Locate(ctx context.Context, dir string) (*Worktree, error) {
	common, err := g.gitPath(ctx, dir, "--git-common-dir")
	if err != nil {
		logging.Debug("git-common-dir failed", "dir", dir, "error", err)
		return nil, errors.NotGitRepo()
	}
	gitDir, err := g.gitPath(ctx, dir, "--git-dir")
	if err != nil {
		return nil, errors.NotGitRepo()
	}
	if common == gitDir {
		return nil, errors.NotWorktree()
	}

	top, err := g.git(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil || top == "" {
		top = dir
	}
	wt := &Worktree{Path: top, Parent: filepath.Dir(common)}

	branch, err := g.git(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil, errors.GitError("failed to resolve branch", err)
	}
	if branch != "HEAD" {
		wt.Branch = branch
	}

	logging.Debug("located worktree", "path", wt.Path, "parent", wt.Parent, "branch", wt.Branch)
	return wt, nil
}

// Inspect is Locate for a worktree about to be merged: it also requires a
// clean status and a commit on HEAD, which it records.
func (g *Git) Inspect(ctx context.Context, dir string) (*Worktree, error) {
	wt, err := g.Locate(ctx, dir)
	if err != nil {
		return nil, err
	}

	status, err := g.git(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, errors.GitError("failed to read worktree status", err)
	}
	if status != "" {
		return nil, errors.DirtyWorktree(status)
	}

	head, err := g.git(ctx, dir, "rev-parse", "HEAD")
	if err != nil || head == "" {
		return nil, errors.GitError("no commit on HEAD", err)
	}
	wt.Head = head

	return wt, nil
}

// gitPath runs rev-parse for a path flag and resolves the answer against dir.
func (g *Git) gitPath(ctx context.Context, dir, flag string) (string, error) {
	out, err := g.git(ctx, dir, "rev-parse", flag)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("git rev-parse %s: empty output", flag)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return filepath.Clean(out), nil
}

func (g *Git) git(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := g.exec.Output(ctx, "git", append([]string{"-C", dir}, args...)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// validName matches names usable as a directory and a branch suffix.
var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateName checks that a worktree directory name is safe for use as a
// branch name and a single path element.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("worktree name must not be empty")
	}
	if len(name) > 128 {
		return fmt.Errorf("worktree name too long (max 128 characters)")
	}
	if !validName.MatchString(name) {
		return fmt.Errorf("worktree name %q contains invalid characters (allowed: alphanumeric, hyphens, underscores, dots)", name)
	}
	return nil
}
