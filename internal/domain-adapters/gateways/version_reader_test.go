package gateways

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

const versionHeader = `
#ifndef SDL_version_h_
#define SDL_version_h_

#define SDL_MAJOR_VERSION   3
#define SDL_MINOR_VERSION   2
#define SDL_MICRO_VERSION   10

#define SDL_VERSIONNUM(major, minor, patch) ((major) * 1000000 + (minor) * 1000 + (patch))
#endif
`

func TestHeaderVersionReader_ReadVersion(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "include/SDL3/SDL_version.h"), versionHeader)

	v, err := NewHeaderVersionReader(entities.DefaultProfile().Version).ReadVersion(src)

	require.NoError(t, err)
	assert.Equal(t, entities.Version{Major: 3, Minor: 2, Micro: 10}, v)
}

func TestHeaderVersionReader_MissingMacroIsError(t *testing.T) {
	r := NewHeaderVersionReader(entities.DefaultProfile().Version)

	_, err := r.ParseVersion([]byte("#define SDL_MAJOR_VERSION 3\n#define SDL_MINOR_VERSION 2\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SDL_MICRO_VERSION")
}

func TestHeaderVersionReader_MissingFile(t *testing.T) {
	_, err := NewHeaderVersionReader(entities.DefaultProfile().Version).ReadVersion(t.TempDir())
	assert.Error(t, err)
}
