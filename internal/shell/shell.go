// Package shell turns picker and git results into the shell text the
// toolkami function evals in the user's shell.
package shell

import (
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// Script is a chain of commands joined with " && ", so the first failing
// step stops the rest.
type Script struct {
	steps []string
}

// Run appends a command with every word quoted.
func (s *Script) Run(name string, args ...string) *Script {
	s.steps = append(s.steps, shellquote.Join(append([]string{name}, args...)...))
	return s
}

// Notice appends an echo of msg to stderr, so it reaches the terminal
// outside the captured output.
func (s *Script) Notice(msg string) *Script {
	s.steps = append(s.steps, shellquote.Join("echo", msg)+" >&2")
	return s
}

// Empty reports whether the script has no steps.
func (s *Script) Empty() bool {
	return len(s.steps) == 0
}

func (s *Script) String() string {
	return strings.Join(s.steps, " && ")
}

// Open creates path when missing and changes into it.
func Open(path string) *Script {
	return new(Script).
		Run("mkdir", "-p", path).
		Run("cd", path)
}

// Clone clones uri into path and changes into it.
func Clone(uri, path string) *Script {
	return new(Script).
		Run("mkdir", "-p", path).
		Run("git", "clone", uri, path).
		Run("cd", path)
}

// ConfigCopy names a config directory to copy into a new worktree.
type ConfigCopy struct {
	Name string
	Src  string
}

// ConfigDir is the directory inside a worktree that receives its config.
const ConfigDir = ".toolkami"

// Worktree adds a worktree at path on a new branch, copies the chosen
// config into it when there is one, and changes into it.
func Worktree(path, branch string, config *ConfigCopy) *Script {
	s := new(Script).
		Run("mkdir", "-p", path).
		Run("git", "worktree", "add", "-b", branch, path)

	if config != nil {
		dst := filepath.Join(path, ConfigDir)
		notice := "✓ Config: " + config.Name + " → " + ConfigDir + "/"
		s.Notice(notice).
			Run("mkdir", "-p", dst).
			Run("cp", "-r", config.Src+"/.", dst+"/")
	}

	return s.Run("cd", path)
}

// Merge merges branch into the parent checkout and returns to the worktree.
// An empty branch means a detached HEAD, whose commit is cherry-picked.
func Merge(parent, worktree, branch, head string) *Script {
	s := new(Script).Run("cd", parent)
	if branch == "" {
		s.Run("git", "cherry-pick", head)
	} else {
		s.Run("git", "merge", "--no-ff", branch)
	}
	return s.Run("cd", worktree)
}

// Drop removes the worktree from the parent checkout and deletes its branch.
func Drop(parent, worktree, branch string) *Script {
	s := new(Script).
		Run("cd", parent).
		Run("git", "worktree", "remove", "--force", worktree)
	if branch != "" {
		s.Run("git", "branch", "-D", branch)
	}
	return s
}

// Sandbox runs service from the compose file of dir in a throwaway container.
func Sandbox(dir, composeFile, service string) *Script {
	return new(Script).
		Run("cd", dir).
		Run("docker", "compose", "-f", composeFile, "run", "--rm", service)
}
