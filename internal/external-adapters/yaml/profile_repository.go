package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// ProfileRepository implements repositories.ProfileRepository using YAML files
type ProfileRepository struct {
	profilesDir string
	parser      *ProfileParser
}

// NewProfileRepository creates a new YAML-based profile repository. Profiles
// referenced by name are looked up in profilesDir.
func NewProfileRepository(profilesDir string) *ProfileRepository {
	return &ProfileRepository{
		profilesDir: profilesDir,
		parser:      NewProfileParser(),
	}
}

// GetProfile resolves ref as the built-in profile name, a path to a YAML
// file, or the name of a file in the profiles directory
func (r *ProfileRepository) GetProfile(_ context.Context, ref string) (*entities.Profile, error) {
	def := entities.DefaultProfile()
	if ref == "" || ref == def.Name {
		return def, nil
	}

	if strings.HasSuffix(ref, ".yml") || strings.HasSuffix(ref, ".yaml") {
		return r.parser.ParseFile(ref)
	}

	filePath := filepath.Join(r.profilesDir, ref+".yml")

	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("profile not found: %s", ref)
	}

	return r.parser.ParseFile(filePath)
}
