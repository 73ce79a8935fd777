package orchestrators

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ochairo/intracompat/internal/domain/entities"
	"github.com/ochairo/intracompat/internal/domain/interfaces"
	"github.com/ochairo/intracompat/internal/domain/interfaces/gateways"
	"github.com/ochairo/intracompat/internal/domain/services"
)

// DefaultTestTimeout bounds every test process
const DefaultTestTimeout = 60 * time.Second

// ComparisonConfig holds configuration for the comparison engine
type ComparisonConfig struct {
	Timeout          time.Duration
	TestFilter       string
	AutomationFilter string
	Automation       bool
	AutomationTest   string
	// StrictAutomation folds every automation case result into the verdict.
	// Otherwise only the last case of each tag counts.
	StrictAutomation bool
}

// ComparisonEngine runs the tests of older tags against the DUT library
type ComparisonEngine struct {
	runner   gateways.ProcessRunner
	sections interfaces.Sections
	logger   interfaces.Logger
	config   ComparisonConfig
	environ  func() []string
}

// NewComparisonEngine creates a new comparison engine
func NewComparisonEngine(
	runner gateways.ProcessRunner,
	sections interfaces.Sections,
	logger interfaces.Logger,
	config ComparisonConfig,
) *ComparisonEngine {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTestTimeout
	}
	if config.AutomationTest == "" {
		config.AutomationTest = entities.DefaultProfile().Tests.AutomationTest
	}
	return &ComparisonEngine{
		runner:   runner,
		sections: sections,
		logger:   logger,
		config:   config,
		environ:  os.Environ,
	}
}

// Compare executes all tests of every non-DUT tag and returns the outcome.
// A tag newer than the DUT fails the run but does not stop the others.
// Cancelling ctx aborts the comparison with the context error.
func (e *ComparisonEngine) Compare(ctx context.Context, inv *Inventory) (*entities.Outcome, error) {
	env := services.DUTEnvironment(e.environ(), inv.DUT)
	e.logEnvironment(env)

	outcome := &entities.Outcome{
		Others:            inv.Others,
		DUT:               inv.DUT,
		UnitResults:       entities.NewResultMatrix(),
		AutomationResults: entities.NewResultMatrix(),
		UnitNames:         inv.UnitNames.Names(),
		AutomationNames:   inv.AutomationNames.Names(),
		AutomationEnabled: e.config.Automation,
	}
	verdict := services.NewVerdict()

	for _, tag := range inv.Others {
		if !tag.Version.LessOrEqual(inv.DUT.Version) {
			e.logger.Error(fmt.Sprintf("Version of %s %s is not <= version of %s %s",
				tag.Name, tag.Version, inv.DUT.Name, inv.DUT.Version))
			verdict.Fail()
			continue
		}

		tests := inv.Tests[tag.Name]
		if tests == nil {
			tests = &entities.TagTests{}
		}

		if err := e.runUnitTests(ctx, tag, tests, env, outcome.UnitResults, verdict); err != nil {
			return nil, fmt.Errorf("tests of %s aborted: %w", tag.Name, err)
		}
		if e.config.Automation {
			if err := e.runAutomation(ctx, tag, tests, env, outcome.AutomationResults, verdict); err != nil {
				return nil, fmt.Errorf("testautomation of %s aborted: %w", tag.Name, err)
			}
		}
	}

	outcome.Success = verdict.OK()
	return outcome, nil
}

func (e *ComparisonEngine) runUnitTests(
	ctx context.Context,
	tag *entities.Tag,
	tests *entities.TagTests,
	env map[string]string,
	results *entities.ResultMatrix,
	verdict *services.Verdict,
) error {
	results.Open(tag.Name)
	e.logger.Info(fmt.Sprintf("Running test executables of %s %s", tag.Name, tag.Version))

	for _, test := range tests.UnitTests.Sorted() {
		if err := ctx.Err(); err != nil {
			return err
		}
		title := fmt.Sprintf("Run %s: %s", test.Name, test.Command)
		err := e.sections.Group(title, func() error {
			result := e.execute(ctx, test.Name, e.config.TestFilter, test.Command, env)
			if err := ctx.Err(); err != nil {
				return err
			}
			results.Record(tag.Name, test.Name, result)
			verdict.Observe(result)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *ComparisonEngine) runAutomation(
	ctx context.Context,
	tag *entities.Tag,
	tests *entities.TagTests,
	env map[string]string,
	results *entities.ResultMatrix,
	verdict *services.Verdict,
) error {
	results.Open(tag.Name)

	command, ok := tests.UnitTests[e.config.AutomationTest]
	if !ok {
		e.logger.Warn(fmt.Sprintf("Tag %s has no %s test", tag.Name, e.config.AutomationTest))
		return nil
	}

	var last *entities.TestResult
	for _, name := range tests.AutomationCases {
		if err := ctx.Err(); err != nil {
			return err
		}
		title := fmt.Sprintf("Run %s --filter %s", e.config.AutomationTest, name)
		err := e.sections.Group(title, func() error {
			result := e.execute(ctx, name, e.config.AutomationFilter, command.With("--filter", name), env)
			if err := ctx.Err(); err != nil {
				return err
			}
			results.Record(tag.Name, name, result)
			if e.config.StrictAutomation {
				verdict.Observe(result)
			}
			last = &result
			return nil
		})
		if err != nil {
			return err
		}
	}

	if !e.config.StrictAutomation && last != nil {
		verdict.Observe(*last)
	}
	return nil
}

// execute runs cmd unless filter is set and name does not contain it
func (e *ComparisonEngine) execute(ctx context.Context, name, filter string, cmd entities.Invocation, env map[string]string) entities.TestResult {
	if filter != "" && !strings.Contains(name, filter) {
		e.logger.Info("Skipping")
		return entities.ResultSkip
	}

	result := e.runner.Run(ctx, cmd, e.config.Timeout, env)
	e.logger.Info(fmt.Sprintf("Test %s : %s", name, result))
	return result
}

func (e *ComparisonEngine) logEnvironment(env map[string]string) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.logger.Info("Child environment:")
	for _, k := range keys {
		e.logger.Info(fmt.Sprintf("  %s=%s", k, env[k]))
	}
}
