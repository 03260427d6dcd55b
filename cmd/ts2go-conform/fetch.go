package main

import (
	"flag"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"ts2go/runtime-go/pkg/conformance"
)

// fetchCommand clones a conformance-suite repository, optionally pinning a
// tag, branch or commit, then re-pins the local manifest so later runs can
// verify the files were not touched.
func fetchCommand(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	rev := fs.String("rev", "", "tag, branch or commit to check out")
	depth := fs.Int("depth", 0, "shallow clone depth (0 = full history)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("fetch: expected repository URL and target directory")
	}
	url, dir := fs.Arg(0), fs.Arg(1)

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("fetch: target %s already exists", dir)
	}

	repo, err := git.PlainClone(dir, false, &git.CloneOptions{
		URL:   url,
		Depth: *depth,
	})
	if err != nil {
		return fmt.Errorf("fetch: clone %s: %w", url, err)
	}

	revision := *rev
	if revision != "" {
		worktree, err := repo.Worktree()
		if err != nil {
			return fmt.Errorf("fetch: open worktree: %w", err)
		}
		hash, err := repo.ResolveRevision(plumbing.Revision(revision))
		if err != nil {
			return fmt.Errorf("fetch: resolve %q: %w", revision, err)
		}
		if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
			return fmt.Errorf("fetch: checkout %s: %w", hash, err)
		}
	} else if head, err := repo.Head(); err == nil {
		revision = head.Hash().String()
	}

	manifest, err := conformance.BuildManifest(dir, toolName, url, revision)
	if err != nil {
		return err
	}
	if err := manifest.Save(dir); err != nil {
		return err
	}
	fmt.Printf("fetched %s into %s (%d suite(s), rev %s)\n", url, dir, len(manifest.Suites), revision)
	return nil
}
