package main

import (
	"github.com/urfave/cli/v2"

	orchestrators "github.com/ochairo/intracompat/internal/domain-orchestrators"
	"github.com/ochairo/intracompat/internal/domain/entities"
)

// EnvVarPrefix prefixes the environment variable of every flag
const EnvVarPrefix = "INTRACOMPAT"

func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	RepoFlag = &cli.StringFlag{
		Name:    "repo",
		Aliases: []string{"R"},
		EnvVars: prefixEnvVar("REPO"),
		Usage:   "Git repository to clone tags from (default: repository of the profile)",
	}
	OtherTagsFlag = &cli.StringSliceFlag{
		Name:     "other-tags",
		Required: true,
		EnvVars:  prefixEnvVar("OTHER_TAGS"),
		Usage:    "Older tags whose tests run against the DUT (repeatable or comma separated)",
	}
	DUTTagFlag = &cli.StringFlag{
		Name:     "dut-tag",
		Required: true,
		EnvVars:  prefixEnvVar("DUT_TAG"),
		Usage:    "Tag to test",
	}
	CwdFlag = &cli.StringFlag{
		Name:    "cwd",
		Aliases: []string{"C"},
		EnvVars: prefixEnvVar("CWD"),
		Usage:   "Working directory holding one directory per tag (default: current directory)",
	}
	FilterTestsFlag = &cli.StringFlag{
		Name:    "filter-tests",
		EnvVars: prefixEnvVar("FILTER_TESTS"),
		Usage:   "Only run tests whose name contains this substring",
	}
	FilterAutomationFlag = &cli.StringFlag{
		Name:    "filter-testautomation",
		EnvVars: prefixEnvVar("FILTER_TESTAUTOMATION"),
		Usage:   "Only run testautomation cases whose name contains this substring (implies --testautomation)",
	}
	CloneFlag = &cli.BoolFlag{
		Name:    "clone",
		EnvVars: prefixEnvVar("CLONE"),
		Usage:   "Clone every tag into the working directory",
	}
	BuildFlag = &cli.BoolFlag{
		Name:    "build",
		EnvVars: prefixEnvVar("BUILD"),
		Usage:   "Configure, build and install every tag",
	}
	GitHubFlag = &cli.BoolFlag{
		Name:    "github",
		EnvVars: prefixEnvVar("GITHUB"),
		Usage:   "Group output with GitHub Actions workflow commands",
	}
	AutomationFlag = &cli.BoolFlag{
		Name:    "testautomation",
		EnvVars: prefixEnvVar("TESTAUTOMATION"),
		Usage:   "Run testautomation cases separately",
	}
	ProfileFlag = &cli.StringFlag{
		Name:    "profile",
		Value:   entities.DefaultProfile().Name,
		EnvVars: prefixEnvVar("PROFILE"),
		Usage:   "Built-in profile name or path to a profile YAML file",
	}
	TagKeyringFlag = &cli.StringFlag{
		Name:    "tag-keyring",
		EnvVars: prefixEnvVar("TAG_KEYRING"),
		Usage:   "OpenPGP keyring used to verify cloned tags (requires --clone)",
	}
	ReportFileFlag = &cli.StringFlag{
		Name:    "report-file",
		EnvVars: prefixEnvVar("REPORT_FILE"),
		Usage:   "Write the result matrix to a .json, .yml or .yaml file",
	}
	TimeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Value:   orchestrators.DefaultTestTimeout,
		EnvVars: prefixEnvVar("TIMEOUT"),
		Usage:   "Maximum run time of a single test",
	}
	StrictAutomationFlag = &cli.BoolFlag{
		Name:    "strict-automation",
		EnvVars: prefixEnvVar("STRICT_AUTOMATION"),
		Usage:   "Let every testautomation case decide the exit code, not only the last one",
	}
	NoColorFlag = &cli.BoolFlag{
		Name:    "no-color",
		EnvVars: prefixEnvVar("NO_COLOR"),
		Usage:   "Disable colored output",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		EnvVars: prefixEnvVar("VERBOSE"),
		Usage:   "Enable debug logging",
	}
)

var requiredFlags = []cli.Flag{
	OtherTagsFlag,
	DUTTagFlag,
}

var optionalFlags = []cli.Flag{
	RepoFlag,
	CwdFlag,
	FilterTestsFlag,
	FilterAutomationFlag,
	CloneFlag,
	BuildFlag,
	GitHubFlag,
	AutomationFlag,
	ProfileFlag,
	TagKeyringFlag,
	ReportFileFlag,
	TimeoutFlag,
	StrictAutomationFlag,
	NoColorFlag,
	VerboseFlag,
}

// Flags contains the list of configuration options available to the binary
var Flags = append(append([]cli.Flag{}, requiredFlags...), optionalFlags...)
