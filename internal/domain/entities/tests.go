package entities

import (
	"fmt"
	"sort"
)

// Invocation is an executable followed by its arguments
type Invocation []string

// With returns a copy of the invocation with extra arguments appended
func (inv Invocation) With(args ...string) Invocation {
	out := make(Invocation, 0, len(inv)+len(args))
	out = append(out, inv...)
	return append(out, args...)
}

func (inv Invocation) String() string {
	return fmt.Sprintf("%q", []string(inv))
}

// UnitTest is an installed test discovered from its descriptor file
type UnitTest struct {
	Name    string
	Command Invocation
}

// UnitTests maps unique test names to their invocations
type UnitTests map[string]Invocation

// Names returns the test names in sorted order
func (u UnitTests) Names() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sorted returns the tests ordered by name
func (u UnitTests) Sorted() []UnitTest {
	names := u.Names()
	out := make([]UnitTest, 0, len(names))
	for _, name := range names {
		out = append(out, UnitTest{Name: name, Command: u[name]})
	}
	return out
}

// TagTests holds everything discovered for one tag
type TagTests struct {
	UnitTests       UnitTests
	AutomationCases []string
}

// NameSet is an insertion-ordered set of test names
type NameSet struct {
	order []string
	seen  map[string]struct{}
}

// NewNameSet creates an empty NameSet
func NewNameSet() *NameSet {
	return &NameSet{seen: make(map[string]struct{})}
}

// Add inserts names that are not already present
func (s *NameSet) Add(names ...string) {
	for _, name := range names {
		if _, ok := s.seen[name]; ok {
			continue
		}
		s.seen[name] = struct{}{}
		s.order = append(s.order, name)
	}
}

// Names returns the names in first-seen order
func (s *NameSet) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of distinct names
func (s *NameSet) Len() int {
	return len(s.order)
}
