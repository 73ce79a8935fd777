package yaml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/intracompat/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// Report is the serialized form of a compatibility run
type Report struct {
	DUT     ReportTag   `yaml:"dut" json:"dut"`
	Success bool        `yaml:"success" json:"success"`
	Tags    []ReportTag `yaml:"tags" json:"tags"`
}

// ReportTag holds the results of one tag run against the DUT library
type ReportTag struct {
	Name       string                         `yaml:"name" json:"name"`
	Version    string                         `yaml:"version" json:"version"`
	UnitTests  map[string]entities.TestResult `yaml:"unit_tests,omitempty" json:"unit_tests,omitempty"`
	Automation map[string]entities.TestResult `yaml:"automation,omitempty" json:"automation,omitempty"`
}

// NewReport converts an outcome into its serialized form. Every known test
// name is listed for every tag, with n/a where nothing was recorded.
func NewReport(outcome *entities.Outcome) *Report {
	report := &Report{
		DUT:     ReportTag{Name: outcome.DUT.Name, Version: outcome.DUT.Version.String()},
		Success: outcome.Success,
	}

	for _, tag := range outcome.Others {
		rt := ReportTag{
			Name:      tag.Name,
			Version:   tag.Version.String(),
			UnitTests: collect(outcome.UnitResults, tag.Name, outcome.UnitNames),
		}
		if outcome.AutomationEnabled {
			rt.Automation = collect(outcome.AutomationResults, tag.Name, outcome.AutomationNames)
		}
		report.Tags = append(report.Tags, rt)
	}
	return report
}

func collect(m *entities.ResultMatrix, tag string, names []string) map[string]entities.TestResult {
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]entities.TestResult, len(names))
	for _, name := range names {
		out[name] = m.Lookup(tag, name)
	}
	return out
}

// ReportWriter writes reports as YAML or JSON depending on the file extension
type ReportWriter struct{}

// NewReportWriter creates a new report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Marshal encodes the report in the format implied by path
func (w *ReportWriter) Marshal(path string, report *Report) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return append(data, '\n'), nil
	case ".yml", ".yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q (use .json, .yml or .yaml)", filepath.Ext(path))
	}
}

// WriteFile writes the outcome report to path
func (w *ReportWriter) WriteFile(path string, outcome *entities.Outcome) error {
	data, err := w.Marshal(path, NewReport(outcome))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
