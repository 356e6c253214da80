// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/tfctl/textdiff/internal/cacheutil"
	"github.com/tfctl/textdiff/internal/log"
)

type gitSource struct {
	spec    string
	rev     string
	path    string
	repoDir string
}

// newGitSource parses "git:REV:path". REV may be empty, meaning HEAD.
func newGitSource(spec string, o options) (*gitSource, error) {
	rest := strings.TrimPrefix(spec, "git:")
	rev, path, found := strings.Cut(rest, ":")
	if !found || path == "" {
		return nil, fmt.Errorf("git source must look like git:REV:path: %s", spec)
	}
	if rev == "" {
		rev = "HEAD"
	}

	repoDir := o.repoDir
	if repoDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		repoDir = wd
	}

	return &gitSource{spec: spec, rev: rev, path: path, repoDir: repoDir}, nil
}

func (s *gitSource) Load(_ context.Context) ([]byte, error) {
	repo, err := git.PlainOpenWithOptions(s.repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("error opening git repository: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(s.rev))
	if err != nil {
		return nil, fmt.Errorf("error resolving revision %s: %w", s.rev, err)
	}

	rel, err := s.repoPath(repo)
	if err != nil {
		return nil, err
	}
	log.Debugf("git source: rev=%s hash=%s path=%s", s.rev, hash, rel)

	// A commit hash plus path names an immutable blob.
	return cacheutil.ReadThrough([]string{"git"}, hash.String()+":"+rel, func() ([]byte, error) {
		commit, err := repo.CommitObject(*hash)
		if err != nil {
			return nil, fmt.Errorf("error getting commit object: %w", err)
		}
		file, err := commit.File(rel)
		if err != nil {
			return nil, fmt.Errorf("error getting %s at %s: %w", rel, s.rev, err)
		}
		content, err := file.Contents()
		if err != nil {
			return nil, fmt.Errorf("error getting file contents: %w", err)
		}
		return []byte(content), nil
	})
}

// repoPath converts the spec path, relative to repoDir, into a slash separated
// path relative to the work tree root.
func (s *gitSource) repoPath(repo *git.Repository) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("error getting worktree: %w", err)
	}
	root := wt.Filesystem.Root()

	abs := s.path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.repoDir, s.path)
	}

	// Resolve symlinks on both sides so temp dirs like /var -> /private/var
	// compare equal.
	if r, err := filepath.EvalSymlinks(root); err == nil {
		root = r
	}
	if d, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(d, filepath.Base(abs))
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository at %s", s.path, root)
	}
	return filepath.ToSlash(rel), nil
}

func (s *gitSource) String() string { return s.spec }
