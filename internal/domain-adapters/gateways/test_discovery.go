package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"gopkg.in/ini.v1"

	"github.com/ochairo/intracompat/internal/domain/entities"
	"github.com/ochairo/intracompat/internal/domain/interfaces"
)

const (
	descriptorSection = "Test"
	descriptorExecKey = "Exec"
)

// InstalledTestFinder discovers installed unit tests and automation cases
type InstalledTestFinder struct {
	layout     entities.TestLayout
	caseRegexp *regexp.Regexp
	logger     interfaces.Logger
}

// NewInstalledTestFinder creates a finder for the given project layout
func NewInstalledTestFinder(layout entities.TestLayout, logger interfaces.Logger) *InstalledTestFinder {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &InstalledTestFinder{
		layout:     layout,
		caseRegexp: AutomationCasePattern(layout.AutomationType),
		logger:     logger,
	}
}

// AutomationCasePattern matches a static (optionally const) test case
// reference whose initializer's second field is the case name:
//
//	static const <typeName> ident = { func, "case.name-1", ...
//
// The case name is limited to [a-zA-Z0-9_.-].
func AutomationCasePattern(typeName string) *regexp.Regexp {
	return regexp.MustCompile(`static\s*(?:const)?\s*` + regexp.QuoteMeta(typeName) +
		`\s*[a-zA-Z0-9_]+\s*=\s*\{\s*[a-zA-Z0-9_]+\s*,\s*"([a-zA-Z0-9_.-]+)"\s*,`)
}

// UnitTests reads every descriptor in the installed tests directory of tag.
// Entries that are not valid descriptors are skipped with a warning; a
// missing directory means the tag was never installed and is an error.
func (f *InstalledTestFinder) UnitTests(tag *entities.Tag) (entities.UnitTests, error) {
	dir := filepath.Join(tag.PrefixDir, f.layout.InstalledTestsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read installed tests of %s: %w", tag.Name, err)
	}

	tests := make(entities.UnitTests)
	for _, entry := range entries {
		if entry.IsDir() {
			f.logger.Warn("skipping directory in installed tests", interfaces.F("path", entry.Name()))
			continue
		}

		path := filepath.Join(dir, entry.Name())
		cmd, err := ParseDescriptorFile(path)
		if err != nil {
			f.logger.Warn("skipping invalid test descriptor", interfaces.F("path", path), interfaces.F("error", err))
			continue
		}
		tests[descriptorName(entry.Name())] = cmd
	}

	return tests, nil
}

// ParseDescriptorFile reads a test descriptor from disk
func ParseDescriptorFile(path string) (entities.Invocation, error) {
	//nolint:gosec // G304: path is an entry of the installed tests directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return ParseDescriptor(data)
}

// ParseDescriptor returns the command of the Exec key in the [Test] section,
// split with POSIX shell word splitting rules
func ParseDescriptor(data []byte) (entities.Invocation, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		IgnoreContinuation:         true,
		IgnoreInlineComment:        true,
		PreserveSurroundedQuote:    true,
		AllowPythonMultilineValues: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	section, err := cfg.GetSection(descriptorSection)
	if err != nil {
		return nil, fmt.Errorf("descriptor has no [%s] section", descriptorSection)
	}
	key, err := section.GetKey(descriptorExecKey)
	if err != nil {
		return nil, fmt.Errorf("descriptor has no %s key", descriptorExecKey)
	}

	words, err := shellquote.Split(key.String())
	if err != nil {
		return nil, fmt.Errorf("failed to split %s %q: %w", descriptorExecKey, key.String(), err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty %s command", descriptorExecKey)
	}
	return entities.Invocation(words), nil
}

func descriptorName(file string) string {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	if stem == "" {
		return file
	}
	return stem
}

// AutomationCases scans the automation sources of tag for case names, in
// file name order then source order. Duplicates are kept.
func (f *InstalledTestFinder) AutomationCases(tag *entities.Tag) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(tag.SourceDir, f.layout.AutomationGlob))
	if err != nil {
		return nil, fmt.Errorf("invalid automation glob: %w", err)
	}
	sort.Strings(files)

	var cases []string
	for _, file := range files {
		//nolint:gosec // G304: file matched the automation glob in the source tree
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		cases = append(cases, f.ExtractCases(data)...)
	}
	return cases, nil
}

// ExtractCases returns every case name declared in source
func (f *InstalledTestFinder) ExtractCases(source []byte) []string {
	var cases []string
	for _, m := range f.caseRegexp.FindAllSubmatch(source, -1) {
		cases = append(cases, string(m[1]))
	}
	return cases
}
