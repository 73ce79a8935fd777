package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// HeaderVersionReader reads the version triple from #define constants
type HeaderVersionReader struct {
	header entities.VersionHeader
}

// NewHeaderVersionReader creates a reader for the given header layout
func NewHeaderVersionReader(header entities.VersionHeader) *HeaderVersionReader {
	return &HeaderVersionReader{header: header}
}

// ReadVersion parses the version header below sourceDir. Every macro must be
// present; a missing one is an error rather than a zero component.
func (r *HeaderVersionReader) ReadVersion(sourceDir string) (entities.Version, error) {
	path := filepath.Join(sourceDir, r.header.Path)
	//nolint:gosec // G304: path is derived from the working directory and profile
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Version{}, fmt.Errorf("failed to read version header: %w", err)
	}
	return r.ParseVersion(data)
}

// ParseVersion extracts the version triple from header text
func (r *HeaderVersionReader) ParseVersion(header []byte) (entities.Version, error) {
	var v entities.Version
	components := []struct {
		macro string
		dst   *int
	}{
		{r.header.MajorMacro, &v.Major},
		{r.header.MinorMacro, &v.Minor},
		{r.header.MicroMacro, &v.Micro},
	}

	for _, c := range components {
		n, err := defineValue(header, c.macro)
		if err != nil {
			return entities.Version{}, err
		}
		*c.dst = n
	}
	return v, nil
}

func defineValue(header []byte, macro string) (int, error) {
	re := regexp.MustCompile(`(?m)#define\s+` + regexp.QuoteMeta(macro) + `\s+([0-9]+)`)
	m := re.FindSubmatch(header)
	if m == nil {
		return 0, fmt.Errorf("version macro %s not found", macro)
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", macro, err)
	}
	return n, nil
}
