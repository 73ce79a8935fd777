// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"
	"time"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// ProcessRunner runs a test executable under a deadline
type ProcessRunner interface {
	Run(ctx context.Context, cmd entities.Invocation, timeout time.Duration, env map[string]string) entities.TestResult
}

// SourceControl fetches tagged sources
type SourceControl interface {
	// Clone makes a shallow checkout of tag from repo into dir
	Clone(ctx context.Context, repo, tag, dir string) error

	// TagObject returns the raw annotated tag object of tag in dir
	TagObject(ctx context.Context, dir, tag string) ([]byte, error)
}

// BuildSystem configures, builds and installs a source tree
type BuildSystem interface {
	Configure(ctx context.Context, tag *entities.Tag) error
	Build(ctx context.Context, tag *entities.Tag) error
	Install(ctx context.Context, tag *entities.Tag) error
}

// TestDiscovery finds the tests of an installed tag
type TestDiscovery interface {
	// UnitTests reads the installed test descriptors under the tag prefix
	UnitTests(tag *entities.Tag) (entities.UnitTests, error)

	// AutomationCases extracts automation case names from the tag sources
	AutomationCases(tag *entities.Tag) ([]string, error)
}

// VersionReader parses the version of a source tree
type VersionReader interface {
	ReadVersion(sourceDir string) (entities.Version, error)
}

// TagVerifier checks the signature of an annotated tag object
type TagVerifier interface {
	VerifyTag(tagObject []byte) error
}
