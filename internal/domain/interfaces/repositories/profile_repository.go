// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// ProfileRepository defines the interface for accessing project profiles
type ProfileRepository interface {
	// GetProfile retrieves a profile by built-in name or file path
	GetProfile(ctx context.Context, ref string) (*entities.Profile, error)
}
