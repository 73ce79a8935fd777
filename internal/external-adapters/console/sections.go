package console

import (
	"errors"
	"fmt"
	"io"
)

// ErrNestedGroup is returned when a group is opened inside another group
var ErrNestedGroup = errors.New("can enter a group only once")

// PlainSections prints a "<title>:" line before each group
type PlainSections struct {
	out io.Writer
}

// NewPlainSections creates a plain section printer
func NewPlainSections(out io.Writer) *PlainSections {
	return &PlainSections{out: out}
}

// Group prints title and runs fn
func (s *PlainSections) Group(title string, fn func() error) error {
	fmt.Fprintf(s.out, "%s:\n", title)
	return fn()
}

// GitHubSections wraps groups in GitHub Actions workflow commands so the
// log viewer can fold them
type GitHubSections struct {
	out     io.Writer
	inGroup bool
}

// NewGitHubSections creates a GitHub Actions section printer
func NewGitHubSections(out io.Writer) *GitHubSections {
	return &GitHubSections{out: out}
}

// Group prints ::group::title, runs fn and prints ::endgroup::
func (s *GitHubSections) Group(title string, fn func() error) error {
	if s.inGroup {
		return ErrNestedGroup
	}
	fmt.Fprintf(s.out, "::group::%s\n", title)
	s.inGroup = true
	defer func() {
		s.inGroup = false
		fmt.Fprintln(s.out, "::endgroup::")
	}()
	return fn()
}
