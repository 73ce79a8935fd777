package orchestrators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// Mock implementations for testing
type mockSourceControl struct {
	calls     *[]string
	err       error
	tagObject []byte
}

func (m *mockSourceControl) Clone(_ context.Context, repo, tag, dir string) error {
	*m.calls = append(*m.calls, "clone "+tag)
	if m.err != nil {
		return m.err
	}
	// a clone leaves a version header behind
	return writeVersionHeader(dir, entities.Version{Major: 3, Minor: 2, Micro: 0})
}

func (m *mockSourceControl) TagObject(_ context.Context, _, tag string) ([]byte, error) {
	*m.calls = append(*m.calls, "tag-object "+tag)
	return m.tagObject, nil
}

type mockBuildSystem struct {
	calls  *[]string
	failOn string
}

func (m *mockBuildSystem) step(name string, tag *entities.Tag) error {
	*m.calls = append(*m.calls, name+" "+tag.Name)
	if m.failOn == name {
		return fmt.Errorf("%s failed", name)
	}
	return nil
}

func (m *mockBuildSystem) Configure(_ context.Context, tag *entities.Tag) error {
	return m.step("configure", tag)
}

func (m *mockBuildSystem) Build(_ context.Context, tag *entities.Tag) error {
	return m.step("build", tag)
}

func (m *mockBuildSystem) Install(_ context.Context, tag *entities.Tag) error {
	return m.step("install", tag)
}

type mockVersionReader struct {
	versions map[string]entities.Version
	err      error
}

func (m *mockVersionReader) ReadVersion(sourceDir string) (entities.Version, error) {
	if m.err != nil {
		return entities.Version{}, m.err
	}
	return m.versions[filepath.Base(sourceDir)], nil
}

type mockDiscovery struct {
	tests map[string]*entities.TagTests
	err   error
}

func (m *mockDiscovery) UnitTests(tag *entities.Tag) (entities.UnitTests, error) {
	if m.err != nil {
		return nil, m.err
	}
	if t, ok := m.tests[tag.Name]; ok {
		return t.UnitTests, nil
	}
	return entities.UnitTests{}, nil
}

func (m *mockDiscovery) AutomationCases(tag *entities.Tag) ([]string, error) {
	if t, ok := m.tests[tag.Name]; ok {
		return t.AutomationCases, nil
	}
	return nil, nil
}

type mockVerifier struct {
	seen [][]byte
	err  error
}

func (m *mockVerifier) VerifyTag(object []byte) error {
	m.seen = append(m.seen, object)
	return m.err
}

type mockSections struct {
	titles []string
}

func (m *mockSections) Group(title string, fn func() error) error {
	m.titles = append(m.titles, title)
	return fn()
}

type runCall struct {
	cmd     entities.Invocation
	timeout time.Duration
	env     map[string]string
}

// mockRunner returns results keyed by the last argument of the invocation
type mockRunner struct {
	results map[string]entities.TestResult
	calls   []runCall
	onRun   func()
}

func (m *mockRunner) Run(_ context.Context, cmd entities.Invocation, timeout time.Duration, env map[string]string) entities.TestResult {
	m.calls = append(m.calls, runCall{cmd: cmd, timeout: timeout, env: env})
	if m.onRun != nil {
		m.onRun()
	}
	if r, ok := m.results[cmd[len(cmd)-1]]; ok {
		return r
	}
	return entities.ResultSuccess
}

func (m *mockRunner) ran() []string {
	out := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		out = append(out, strings.Join(c.cmd, " "))
	}
	return out
}

func writeVersionHeader(dir string, v entities.Version) error {
	path := filepath.Join(dir, "include", "SDL3", "SDL_version.h")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	content := fmt.Sprintf("#define SDL_MAJOR_VERSION %d\n#define SDL_MINOR_VERSION %d\n#define SDL_MICRO_VERSION %d\n",
		v.Major, v.Minor, v.Micro)
	return os.WriteFile(path, []byte(content), 0600)
}
