package yaml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

func testOutcome() *entities.Outcome {
	v1 := &entities.Tag{Name: "v1", Version: entities.Version{Major: 1}}
	v2 := &entities.Tag{Name: "v2", Version: entities.Version{Major: 1, Minor: 1}}
	dut := &entities.Tag{Name: "main", Version: entities.Version{Major: 1, Minor: 2}}

	unit := entities.NewResultMatrix()
	unit.Record("v1", "alpha", entities.ResultSuccess)
	unit.Record("v2", "beta", entities.ResultTimeout)

	return &entities.Outcome{
		Others:            []*entities.Tag{v1, v2},
		DUT:               dut,
		UnitResults:       unit,
		AutomationResults: entities.NewResultMatrix(),
		UnitNames:         []string{"alpha", "beta"},
		Success:           false,
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport(testOutcome())

	assert.Equal(t, "1.2.0", report.DUT.Version)
	require.Len(t, report.Tags, 2)
	assert.Equal(t, entities.ResultNotApplicable, report.Tags[0].UnitTests["beta"])
	assert.Equal(t, entities.ResultTimeout, report.Tags[1].UnitTests["beta"])
	assert.Nil(t, report.Tags[0].Automation, "automation results are omitted when automation is disabled")
}

func TestReportWriter_WriteFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")

	require.NoError(t, NewReportWriter().WriteFile(path, testOutcome()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, string(data), `"alpha": "SUCCESS"`)
}

func TestReportWriter_WriteFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yml")

	require.NoError(t, NewReportWriter().WriteFile(path, testOutcome()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Tags, 2)
	assert.Equal(t, entities.ResultTimeout, decoded.Tags[1].UnitTests["beta"])
	assert.False(t, decoded.Success)
}

func TestReportWriter_UnsupportedExtension(t *testing.T) {
	_, err := NewReportWriter().Marshal("report.txt", &Report{})
	assert.Error(t, err)
}
