package entities

import "fmt"

// TestResult is the outcome of a single test or automation case
type TestResult int

const (
	// ResultNotApplicable marks a test that does not exist for a tag
	ResultNotApplicable TestResult = iota
	// ResultSuccess marks a process that exited with status zero
	ResultSuccess
	// ResultFailed marks a process that exited with a non-zero status
	ResultFailed
	// ResultTimeout marks a process that was killed at its deadline
	ResultTimeout
	// ResultSkip marks a test excluded by a name filter
	ResultSkip
)

// AllResults lists every TestResult value
var AllResults = []TestResult{
	ResultNotApplicable,
	ResultSuccess,
	ResultFailed,
	ResultTimeout,
	ResultSkip,
}

func (r TestResult) String() string {
	switch r {
	case ResultNotApplicable:
		return "n/a"
	case ResultSuccess:
		return "SUCCESS"
	case ResultFailed:
		return "FAILED"
	case ResultTimeout:
		return "TIMEOUT"
	case ResultSkip:
		return "SKIP"
	default:
		panic(fmt.Sprintf("unknown test result %d", int(r)))
	}
}

// ParseTestResult is the inverse of TestResult.String
func ParseTestResult(s string) (TestResult, error) {
	for _, r := range AllResults {
		if r.String() == s {
			return r, nil
		}
	}
	return ResultNotApplicable, fmt.Errorf("unknown test result %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (r TestResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *TestResult) UnmarshalText(text []byte) error {
	parsed, err := ParseTestResult(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
