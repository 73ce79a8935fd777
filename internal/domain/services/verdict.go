// Package services implements domain business logic and use cases.
package services

import (
	"fmt"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// Verdict accumulates the overall outcome of a compatibility run.
// Only FAILED and TIMEOUT results turn it negative; SKIP and n/a leave it
// unchanged without counting as a success either.
type Verdict struct {
	ok       bool
	observed int
	failures int
}

// NewVerdict creates a passing verdict
func NewVerdict() *Verdict {
	return &Verdict{ok: true}
}

// Observe folds a single result into the verdict
func (v *Verdict) Observe(r entities.TestResult) {
	v.observed++
	switch r {
	case entities.ResultSuccess, entities.ResultSkip, entities.ResultNotApplicable:
	case entities.ResultFailed, entities.ResultTimeout:
		v.ok = false
		v.failures++
	default:
		panic(fmt.Sprintf("unhandled test result %d", int(r)))
	}
}

// Fail marks the verdict negative for a reason that is not a test result,
// such as a tag newer than the device under test
func (v *Verdict) Fail() {
	v.ok = false
	v.failures++
}

// OK reports whether the run is still successful
func (v *Verdict) OK() bool {
	return v.ok
}

// Failures returns the number of results and violations that failed the run
func (v *Verdict) Failures() int {
	return v.failures
}

// Observed returns how many results were folded in
func (v *Verdict) Observed() int {
	return v.observed
}
