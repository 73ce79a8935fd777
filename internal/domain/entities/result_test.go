package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestResult_String(t *testing.T) {
	want := map[TestResult]string{
		ResultNotApplicable: "n/a",
		ResultSuccess:       "SUCCESS",
		ResultFailed:        "FAILED",
		ResultTimeout:       "TIMEOUT",
		ResultSkip:          "SKIP",
	}
	require.Len(t, want, len(AllResults))
	for _, r := range AllResults {
		assert.Equal(t, want[r], r.String())
	}
}

func TestTestResult_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { _ = TestResult(42).String() })
}

func TestTestResult_JSONUsesNames(t *testing.T) {
	data, err := json.Marshal(map[string]TestResult{"testver": ResultTimeout})
	require.NoError(t, err)
	assert.JSONEq(t, `{"testver":"TIMEOUT"}`, string(data))

	var back map[string]TestResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ResultTimeout, back["testver"])
}

func TestParseTestResult_Unknown(t *testing.T) {
	_, err := ParseTestResult("PASSED")
	assert.Error(t, err)
}
