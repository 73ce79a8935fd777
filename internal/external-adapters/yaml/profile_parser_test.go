package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileParser_Parse_Valid(t *testing.T) {
	parser := NewProfileParser()
	yamlData := []byte(`name: sdl2-compat
repository: https://github.com/libsdl-org/sdl2-compat
version:
  header: include/SDL2/SDL_version.h
  major_macro: SDL_MAJOR_VERSION
  minor_macro: SDL_MINOR_VERSION
  micro_macro: SDL_PATCHLEVEL
tests:
  installed_dir: share/installed-tests/sdl2-compat
cmake:
  generator: Unix Makefiles
  build_type: RelWithDebInfo
`)

	profile, err := parser.Parse(yamlData)
	require.NoError(t, err)

	assert.Equal(t, "sdl2-compat", profile.Name)
	assert.Equal(t, "SDL_PATCHLEVEL", profile.Version.MicroMacro)
	assert.Equal(t, "Unix Makefiles", profile.CMake.Generator)
	// Fields left out fall back to the built-in profile
	assert.Equal(t, "SDLTest_TestCaseReference", profile.Tests.AutomationType)
	assert.Equal(t, "SDL_SHARED", profile.CMake.SharedOption)
}

func TestProfileParser_Parse_MissingName(t *testing.T) {
	_, err := NewProfileParser().Parse([]byte("repository: https://example.org/lib\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestProfileParser_Parse_Rejected(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown field", []byte("name: x\ncmake:\n  generatr: Ninja\n")},
		{"invalid yaml", []byte("name: [unclosed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfileParser().Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestProfileRepository_GetProfile_Builtin(t *testing.T) {
	repo := NewProfileRepository(t.TempDir())

	for _, ref := range []string{"", "sdl3"} {
		profile, err := repo.GetProfile(context.Background(), ref)
		require.NoError(t, err, "ref %q", ref)
		assert.Equal(t, "sdl3", profile.Name, "ref %q", ref)
	}
}

func TestProfileRepository_GetProfile_ByNameAndPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: custom\n"), 0600))

	repo := NewProfileRepository(tmpDir)

	byName, err := repo.GetProfile(context.Background(), "custom")
	require.NoError(t, err)
	byPath, err := repo.GetProfile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "custom", byName.Name)
	assert.Equal(t, "custom", byPath.Name)
}

func TestProfileRepository_GetProfile_NotFound(t *testing.T) {
	repo := NewProfileRepository(t.TempDir())

	_, err := repo.GetProfile(context.Background(), "nonexistent")
	assert.Error(t, err)
}
