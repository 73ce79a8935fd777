package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ochairo/intracompat/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/intracompat/internal/domain-orchestrators"
	"github.com/ochairo/intracompat/internal/domain/interfaces"
	domainGateways "github.com/ochairo/intracompat/internal/domain/interfaces/gateways"
	"github.com/ochairo/intracompat/internal/domain/interfaces/repositories"
	"github.com/ochairo/intracompat/internal/external-adapters/console"
	"github.com/ochairo/intracompat/internal/external-adapters/gpg"
	"github.com/ochairo/intracompat/internal/external-adapters/yaml"
)

// runConfig is the validated command line
type runConfig struct {
	Repository       string
	OtherTags        []string
	DUTTag           string
	WorkDir          string
	TestFilter       string
	AutomationFilter string
	Clone            bool
	Build            bool
	GitHub           bool
	Automation       bool
	StrictAutomation bool
	Profile          string
	TagKeyring       string
	ReportFile       string
	Timeout          time.Duration
	NoColor          bool
	Verbose          bool
}

func newRunConfig(c *cli.Context) (*runConfig, error) {
	cfg := &runConfig{
		Repository:       c.String(RepoFlag.Name),
		DUTTag:           strings.TrimSpace(c.String(DUTTagFlag.Name)),
		WorkDir:          c.String(CwdFlag.Name),
		TestFilter:       c.String(FilterTestsFlag.Name),
		AutomationFilter: c.String(FilterAutomationFlag.Name),
		Clone:            c.Bool(CloneFlag.Name),
		Build:            c.Bool(BuildFlag.Name),
		GitHub:           c.Bool(GitHubFlag.Name),
		Automation:       c.Bool(AutomationFlag.Name),
		StrictAutomation: c.Bool(StrictAutomationFlag.Name),
		Profile:          c.String(ProfileFlag.Name),
		TagKeyring:       c.String(TagKeyringFlag.Name),
		ReportFile:       c.String(ReportFileFlag.Name),
		Timeout:          c.Duration(TimeoutFlag.Name),
		NoColor:          c.Bool(NoColorFlag.Name),
		Verbose:          c.Bool(VerboseFlag.Name),
	}

	for _, tag := range c.StringSlice(OtherTagsFlag.Name) {
		if tag = strings.TrimSpace(tag); tag != "" {
			cfg.OtherTags = append(cfg.OtherTags, tag)
		}
	}

	if cfg.AutomationFilter != "" {
		cfg.Automation = true
	}

	if cfg.DUTTag == "" {
		return nil, errors.New("--dut-tag must not be empty")
	}
	if len(cfg.OtherTags) == 0 {
		return nil, errors.New("--other-tags requires at least one tag")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("--timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.TagKeyring != "" && !cfg.Clone {
		return nil, errors.New("--tag-keyring requires --clone")
	}

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg.WorkDir = wd
	}
	abs, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg.WorkDir = abs

	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := newRunConfig(c)
	if err != nil {
		return err
	}
	return execute(c.Context, cfg, c.App.Writer)
}

// execute wires the adapters, prepares every tag, compares them and prints
// the result tables
func execute(ctx context.Context, cfg *runConfig, out io.Writer) error {
	styles := console.NewStyles(colorEnabled(out, cfg.NoColor))
	logger := console.NewLogger(out, styles, cfg.Verbose)

	var sections interfaces.Sections = console.NewPlainSections(out)
	if cfg.GitHub {
		sections = console.NewGitHubSections(out)
	}

	var profiles repositories.ProfileRepository = yaml.NewProfileRepository(cfg.WorkDir)
	profile, err := profiles.GetProfile(ctx, cfg.Profile)
	if err != nil {
		return NewRunError(fmt.Errorf("failed to load profile: %w", err))
	}
	repository := cfg.Repository
	if repository == "" {
		repository = profile.Repository
	}
	logger.Debug("Profile", interfaces.F("name", profile.Name), interfaces.F("repository", repository))

	var verifier domainGateways.TagVerifier
	if cfg.TagKeyring != "" {
		v := gpg.NewVerifier()
		if err := v.ImportKeyFromFile(cfg.TagKeyring); err != nil {
			return NewRunError(err)
		}
		logger.Info(fmt.Sprintf("Loaded %d keys from %s", v.GetKeyringSize(), cfg.TagKeyring))
		verifier = v
	}

	executor := gateways.NewCommandExecutor(logger)
	pipeline := orchestrators.NewTagPipeline(
		gateways.NewGitClient(executor),
		gateways.NewCMakeBuilder(executor, profile.CMake),
		gateways.NewHeaderVersionReader(profile.Version),
		gateways.NewInstalledTestFinder(profile.Tests, logger),
		verifier,
		sections,
		logger,
		orchestrators.TagPipelineConfig{
			Repository:       repository,
			WorkDir:          cfg.WorkDir,
			Clone:            cfg.Clone,
			Build:            cfg.Build,
			AutomationFilter: cfg.AutomationFilter,
		},
	)

	inventory, err := pipeline.Run(ctx, cfg.OtherTags, cfg.DUTTag)
	if err != nil {
		return NewRunError(err)
	}

	engine := orchestrators.NewComparisonEngine(
		gateways.NewProcessRunner(logger),
		sections,
		logger,
		orchestrators.ComparisonConfig{
			Timeout:          cfg.Timeout,
			TestFilter:       cfg.TestFilter,
			AutomationFilter: cfg.AutomationFilter,
			Automation:       cfg.Automation,
			AutomationTest:   profile.Tests.AutomationTest,
			StrictAutomation: cfg.StrictAutomation,
		},
	)

	outcome, err := engine.Compare(ctx, inventory)
	if err != nil {
		return NewRunError(err)
	}

	console.NewReportPrinter(out, styles).Print(outcome)

	if cfg.ReportFile != "" {
		if err := yaml.NewReportWriter().WriteFile(cfg.ReportFile, outcome); err != nil {
			return NewRunError(err)
		}
		logger.Info(fmt.Sprintf("Report written to %s", cfg.ReportFile))
	}

	if !outcome.Success {
		return ErrTestsFailed
	}
	return nil
}

func colorEnabled(out io.Writer, noColor bool) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return console.ColorEnabled(f, noColor)
}
