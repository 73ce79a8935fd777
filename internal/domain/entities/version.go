package entities

import "fmt"

// Version is a semantic version triple read from a version header
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Micro int `json:"micro" yaml:"micro"`
}

// Compare orders versions by major, then minor, then micro.
// It returns -1, 0 or +1.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	default:
		return sign(v.Micro - other.Micro)
	}
}

// LessOrEqual reports whether v <= other
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
