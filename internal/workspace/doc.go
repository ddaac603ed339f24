// Package workspace knows about the places users work in.
//
// Remote repository references typed into the picker are recognized and
// parsed here:
//
//	ref, ok := workspace.ParseRemote("git@github.com:acme/widget.git")
//	// ref == RemoteRef{Host: "github.com", User: "acme", Repo: "widget"}
//
// Git inspects the checkout a merge or drop is run from. It shells out
// through a system.CommandExecutor, so tests drive it with a MockExecutor:
//
//	git := workspace.NewGit(system.DefaultExecutor(), system.DefaultFS())
//	wt, err := git.Inspect(ctx, cwd)
//	// wt.Parent is the main checkout, wt.Branch is empty on a detached HEAD
package workspace
