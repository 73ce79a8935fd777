package services

import (
	"os"
	"strings"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// Dynamic loader variables pointed at the device under test
const (
	LibraryPathVar       = "LD_LIBRARY_PATH"
	DarwinLibraryPathVar = "DYLD_LIBRARY_PATH"
	PathVar              = "PATH"
)

// DUTEnvironment returns the environment for child test processes: the
// parent environment with the loader search paths replaced by the DUT
// library directory and the DUT binary directory prepended to PATH.
func DUTEnvironment(parent []string, dut *entities.Tag) map[string]string {
	env := make(map[string]string, len(parent)+3)
	for _, kv := range parent {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		env[key] = value
	}

	env[DarwinLibraryPathVar] = dut.LibDir()
	env[LibraryPathVar] = dut.LibDir()
	if path, ok := env[PathVar]; ok && path != "" {
		env[PathVar] = dut.BinDir() + string(os.PathListSeparator) + path
	} else {
		env[PathVar] = dut.BinDir()
	}

	return env
}
