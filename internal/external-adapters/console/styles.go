// Package console renders logs, grouped sections and result tables for a
// terminal or CI log.
package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// Styles holds the lipgloss styles used for console output
type Styles struct {
	Error   lipgloss.Style
	Warn    lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
	enabled bool
}

// NewStyles returns the default styles; when enabled is false every style
// renders text unchanged
func NewStyles(enabled bool) *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F56")).Bold(true),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBD2E")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0077B6")).Bold(true),
		enabled: enabled,
	}
}

// Render applies style to s when styling is enabled
func (s *Styles) Render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// ForResult returns the style of a test result cell
func (s *Styles) ForResult(r entities.TestResult) lipgloss.Style {
	switch r {
	case entities.ResultSuccess:
		return s.Success
	case entities.ResultFailed, entities.ResultTimeout:
		return s.Error
	case entities.ResultSkip:
		return s.Warn
	case entities.ResultNotApplicable:
		return s.Muted
	default:
		panic("unhandled test result " + r.String())
	}
}

// ColorEnabled reports whether f is a terminal that should receive colour
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
