package gateways

import (
	"context"
	"fmt"
)

// GitClient fetches tagged sources with the git command line client
type GitClient struct {
	executor *CommandExecutor
	binary   string
}

// NewGitClient creates a git client using the git found on PATH
func NewGitClient(executor *CommandExecutor) *GitClient {
	return &GitClient{executor: executor, binary: "git"}
}

// CloneArgs returns the argument vector of a shallow single-tag clone
func (g *GitClient) CloneArgs(repo, tag, dir string) []string {
	return []string{g.binary, "clone", "--depth=1", "-b", tag, repo, dir}
}

// Clone makes a depth 1 checkout of tag from repo into dir
func (g *GitClient) Clone(ctx context.Context, repo, tag, dir string) error {
	if err := g.executor.Call(ctx, g.CloneArgs(repo, tag, dir)...); err != nil {
		return fmt.Errorf("failed to clone %s at %s: %w", repo, tag, err)
	}
	return nil
}

// TagObject returns the raw annotated tag object, including its signature
func (g *GitClient) TagObject(ctx context.Context, dir, tag string) ([]byte, error) {
	out, err := g.executor.Output(ctx, dir, g.binary, "cat-file", "tag", tag)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag object %s: %w", tag, err)
	}
	return out, nil
}
