// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ochairo/intracompat/internal/domain/entities"
	"github.com/ochairo/intracompat/internal/domain/interfaces"
	"github.com/ochairo/intracompat/internal/domain/interfaces/gateways"
)

// TagPipelineConfig holds configuration for the tag pipeline
type TagPipelineConfig struct {
	Repository       string
	WorkDir          string
	Clone            bool
	Build            bool
	AutomationFilter string
}

// TagPipeline prepares every tag: checkout, version, build and test discovery
type TagPipeline struct {
	vcs       gateways.SourceControl
	builder   gateways.BuildSystem
	versions  gateways.VersionReader
	discovery gateways.TestDiscovery
	verifier  gateways.TagVerifier
	sections  interfaces.Sections
	logger    interfaces.Logger
	config    TagPipelineConfig
}

// NewTagPipeline creates a new tag pipeline. verifier may be nil, in which
// case cloned tags are not signature checked.
func NewTagPipeline(
	vcs gateways.SourceControl,
	builder gateways.BuildSystem,
	versions gateways.VersionReader,
	discovery gateways.TestDiscovery,
	verifier gateways.TagVerifier,
	sections interfaces.Sections,
	logger interfaces.Logger,
	config TagPipelineConfig,
) *TagPipeline {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &TagPipeline{
		vcs:       vcs,
		builder:   builder,
		versions:  versions,
		discovery: discovery,
		verifier:  verifier,
		sections:  sections,
		logger:    logger,
		config:    config,
	}
}

// Inventory is what the pipeline learned about all tags
type Inventory struct {
	Others          []*entities.Tag
	DUT             *entities.Tag
	Tests           map[string]*entities.TagTests
	UnitNames       *entities.NameSet
	AutomationNames *entities.NameSet
}

// Run prepares the other tags in the given order, then the DUT tag. Any
// failure is fatal and returned immediately.
func (p *TagPipeline) Run(ctx context.Context, others []string, dut string) (*Inventory, error) {
	inv := &Inventory{
		Tests:           make(map[string]*entities.TagTests),
		UnitNames:       entities.NewNameSet(),
		AutomationNames: entities.NewNameSet(),
	}

	for _, name := range append(append([]string(nil), others...), dut) {
		tag, tests, err := p.Prepare(ctx, name)
		if err != nil {
			return nil, err
		}

		inv.Tests[name] = tests
		inv.UnitNames.Add(tests.UnitTests.Names()...)
		inv.AutomationNames.Add(tests.AutomationCases...)

		if len(inv.Others) < len(others) {
			inv.Others = append(inv.Others, tag)
		} else {
			inv.DUT = tag
		}
	}

	return inv, nil
}

// Prepare runs every pipeline step for a single tag
func (p *TagPipeline) Prepare(ctx context.Context, name string) (*entities.Tag, *entities.TagTests, error) {
	tag := entities.NewTag(name, p.config.WorkDir)

	if err := os.MkdirAll(tag.BuildDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create build directory: %w", err)
	}

	// Step 1: Fresh shallow checkout
	if p.config.Clone {
		if err := p.checkout(ctx, tag); err != nil {
			return nil, nil, err
		}
	}

	// Step 2: Version from the sources
	version, err := p.versions.ReadVersion(tag.SourceDir)
	if err != nil {
		return nil, nil, fmt.Errorf("tag %s: %w", name, err)
	}
	tag.Version = version
	p.logger.Info(fmt.Sprintf("Tag %s -> %s", name, version))

	// Step 3: Clean build and install
	if p.config.Build {
		if err := p.build(ctx, tag); err != nil {
			return nil, nil, err
		}
	}

	// Step 4: Test discovery
	tests, err := p.discover(tag)
	if err != nil {
		return nil, nil, err
	}

	return tag, tests, nil
}

func (p *TagPipeline) checkout(ctx context.Context, tag *entities.Tag) error {
	if err := recreateDir(tag.SourceDir); err != nil {
		return err
	}

	title := fmt.Sprintf("Cloning '%s' to '%s'", p.config.Repository, tag.SourceDir)
	return p.sections.Group(title, func() error {
		if err := p.vcs.Clone(ctx, p.config.Repository, tag.Name, tag.SourceDir); err != nil {
			return err
		}
		if p.verifier == nil {
			return nil
		}

		object, err := p.vcs.TagObject(ctx, tag.SourceDir, tag.Name)
		if err != nil {
			return err
		}
		if err := p.verifier.VerifyTag(object); err != nil {
			return fmt.Errorf("tag %s: %w", tag.Name, err)
		}
		p.logger.Info(fmt.Sprintf("Tag %s has a valid signature", tag.Name))
		return nil
	})
}

func (p *TagPipeline) build(ctx context.Context, tag *entities.Tag) error {
	if err := recreateDir(tag.PrefixDir); err != nil {
		return err
	}
	if err := recreateDir(tag.BuildDir); err != nil {
		return err
	}

	steps := []struct {
		title string
		run   func(context.Context, *entities.Tag) error
	}{
		{fmt.Sprintf("Configuring '%s' in '%s'", p.config.Repository, tag.BuildDir), p.builder.Configure},
		{fmt.Sprintf("Building '%s'", tag.BuildDir), p.builder.Build},
		{fmt.Sprintf("Installing to '%s'", tag.PrefixDir), p.builder.Install},
	}

	for _, step := range steps {
		err := p.sections.Group(step.title, func() error {
			return step.run(ctx, tag)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *TagPipeline) discover(tag *entities.Tag) (*entities.TagTests, error) {
	unitTests, err := p.discovery.UnitTests(tag)
	if err != nil {
		return nil, err
	}
	p.logger.Info(fmt.Sprintf("Tag %s has %d tests", tag.Name, len(unitTests)))

	cases, err := p.discovery.AutomationCases(tag)
	if err != nil {
		return nil, err
	}
	p.logger.Info(fmt.Sprintf("Tag %s has %d testautomation tests", tag.Name, len(cases)))

	if filter := p.config.AutomationFilter; filter != "" {
		filtered := make([]string, 0, len(cases))
		for _, c := range cases {
			if strings.Contains(c, filter) {
				filtered = append(filtered, c)
			}
		}
		cases = filtered
		p.logger.Info(fmt.Sprintf("Filter reduced number of testautomation tests to %d", len(cases)))
	}

	return &entities.TagTests{UnitTests: unitTests, AutomationCases: cases}, nil
}

// recreateDir deletes dir and everything below it, then creates it empty
func recreateDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
