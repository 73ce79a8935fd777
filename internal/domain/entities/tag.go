// Package entities defines core domain models and data structures.
package entities

import "path/filepath"

// Tag represents a version reference of the library under test together with
// the directories derived from it and the version parsed from its sources.
type Tag struct {
	Name      string
	SourceDir string
	BuildDir  string
	PrefixDir string
	Version   Version
}

// NewTag derives the source, build and install directories of a tag from the
// working directory root.
func NewTag(name, workDir string) *Tag {
	src := filepath.Join(workDir, name)
	return &Tag{
		Name:      name,
		SourceDir: src,
		BuildDir:  filepath.Join(src, "build"),
		PrefixDir: filepath.Join(src, "prefix"),
	}
}

// LibDir returns the installed library directory of the tag
func (t *Tag) LibDir() string {
	return filepath.Join(t.PrefixDir, "lib")
}

// BinDir returns the installed binary directory of the tag
func (t *Tag) BinDir() string {
	return filepath.Join(t.PrefixDir, "bin")
}
