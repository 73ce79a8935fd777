// Package yaml provides YAML-based profile parsing and report writing.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/intracompat/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlProfile represents the raw YAML structure
type yamlProfile struct {
	Name       string      `yaml:"name"`
	Repository string      `yaml:"repository"`
	Version    yamlVersion `yaml:"version"`
	Tests      yamlTests   `yaml:"tests"`
	CMake      yamlCMake   `yaml:"cmake"`
}

type yamlVersion struct {
	Header string `yaml:"header"`
	Major  string `yaml:"major_macro"`
	Minor  string `yaml:"minor_macro"`
	Micro  string `yaml:"micro_macro"`
}

type yamlTests struct {
	InstalledDir   string `yaml:"installed_dir"`
	AutomationGlob string `yaml:"automation_glob"`
	AutomationType string `yaml:"automation_type"`
	AutomationTest string `yaml:"automation_test"`
}

type yamlCMake struct {
	Generator    string `yaml:"generator"`
	BuildType    string `yaml:"build_type"`
	SharedOption string `yaml:"shared_option"`
	StaticOption string `yaml:"static_option"`
	TestsOption  string `yaml:"tests_option"`
	InstallTests string `yaml:"install_tests_option"`
}

// ProfileParser parses YAML profile files
type ProfileParser struct{}

// NewProfileParser creates a new YAML parser
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// ParseFile parses a YAML profile file into a Profile entity
func (p *ProfileParser) ParseFile(filePath string) (*entities.Profile, error) {
	//nolint:gosec // G304: filePath is the profile path given on the command line
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Profile entity. Fields left out fall back
// to the built-in SDL3 profile.
func (p *ProfileParser) Parse(data []byte) (*entities.Profile, error) {
	var raw yamlProfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if raw.Name == "" {
		return nil, fmt.Errorf("profile must have a name")
	}

	def := entities.DefaultProfile()
	profile := &entities.Profile{
		Name:       raw.Name,
		Repository: or(raw.Repository, def.Repository),
		Version: entities.VersionHeader{
			Path:       or(raw.Version.Header, def.Version.Path),
			MajorMacro: or(raw.Version.Major, def.Version.MajorMacro),
			MinorMacro: or(raw.Version.Minor, def.Version.MinorMacro),
			MicroMacro: or(raw.Version.Micro, def.Version.MicroMacro),
		},
		Tests: entities.TestLayout{
			InstalledTestsDir: or(raw.Tests.InstalledDir, def.Tests.InstalledTestsDir),
			AutomationGlob:    or(raw.Tests.AutomationGlob, def.Tests.AutomationGlob),
			AutomationType:    or(raw.Tests.AutomationType, def.Tests.AutomationType),
			AutomationTest:    or(raw.Tests.AutomationTest, def.Tests.AutomationTest),
		},
		CMake: entities.CMakeConfig{
			Generator:    or(raw.CMake.Generator, def.CMake.Generator),
			BuildType:    or(raw.CMake.BuildType, def.CMake.BuildType),
			SharedOption: or(raw.CMake.SharedOption, def.CMake.SharedOption),
			StaticOption: or(raw.CMake.StaticOption, def.CMake.StaticOption),
			TestsOption:  or(raw.CMake.TestsOption, def.CMake.TestsOption),
			InstallTests: or(raw.CMake.InstallTests, def.CMake.InstallTests),
		},
	}

	return profile, nil
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
