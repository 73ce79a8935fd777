package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultMatrix_LookupMissingIsNotApplicable(t *testing.T) {
	m := NewResultMatrix()
	m.Record("v1", "alpha", ResultSuccess)

	assert.Equal(t, ResultSuccess, m.Lookup("v1", "alpha"))
	assert.Equal(t, ResultNotApplicable, m.Lookup("v1", "beta"))
	assert.Equal(t, ResultNotApplicable, m.Lookup("v2", "alpha"))
	assert.False(t, m.HasTag("v2"))
}

func TestResultMatrix_RecordKeepsFirstOrder(t *testing.T) {
	m := NewResultMatrix()
	m.Record("v1", "b", ResultFailed)
	m.Record("v1", "a", ResultSkip)
	m.Record("v1", "b", ResultSuccess)

	assert.Equal(t, []string{"b", "a"}, m.Tests("v1"))
	assert.Equal(t, ResultSuccess, m.Lookup("v1", "b"))
	assert.Equal(t, 2, m.Len())
}

func TestNameSet_FirstSeenOrder(t *testing.T) {
	s := NewNameSet()
	s.Add("x", "y")
	s.Add("y", "z", "x")

	assert.Equal(t, []string{"x", "y", "z"}, s.Names())
	assert.Equal(t, 3, s.Len())
}

func TestUnitTests_SortedByName(t *testing.T) {
	u := UnitTests{
		"testver":   {"testver"},
		"testaudio": {"testaudio", "--quiet"},
	}

	sorted := u.Sorted()
	assert.Equal(t, "testaudio", sorted[0].Name)
	assert.Equal(t, Invocation{"testaudio", "--quiet"}, sorted[0].Command)
	assert.Equal(t, []string{"testaudio", "testver"}, u.Names())
}

func TestInvocation_WithDoesNotAlias(t *testing.T) {
	base := make(Invocation, 1, 4)
	base[0] = "testautomation"

	a := base.With("--filter", "a")
	b := base.With("--filter", "b")

	assert.Equal(t, Invocation{"testautomation", "--filter", "a"}, a)
	assert.Equal(t, Invocation{"testautomation", "--filter", "b"}, b)
}

func TestNewTag_Paths(t *testing.T) {
	tag := NewTag("release-3.2.0", "/work")

	assert.Equal(t, "/work/release-3.2.0", tag.SourceDir)
	assert.Equal(t, "/work/release-3.2.0/build", tag.BuildDir)
	assert.Equal(t, "/work/release-3.2.0/prefix", tag.PrefixDir)
	assert.Equal(t, "/work/release-3.2.0/prefix/lib", tag.LibDir())
	assert.Equal(t, "/work/release-3.2.0/prefix/bin", tag.BinDir())
}

func TestInvocation_String(t *testing.T) {
	assert.Equal(t, `["/bin/true" "--flag" "a b"]`, Invocation{"/bin/true", "--flag", "a b"}.String())
}
