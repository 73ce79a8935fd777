package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// ColumnWidth is the width of each tag column
const ColumnWidth = 12

// ReportPrinter renders the compatibility matrix as aligned text tables
type ReportPrinter struct {
	out    io.Writer
	styles *Styles
}

// NewReportPrinter creates a printer writing to out
func NewReportPrinter(out io.Writer, styles *Styles) *ReportPrinter {
	return &ReportPrinter{out: out, styles: styles}
}

// Print renders the automation table when automation ran, then the unit
// test table
func (p *ReportPrinter) Print(outcome *entities.Outcome) {
	if outcome.AutomationEnabled {
		if len(outcome.AutomationNames) > 0 {
			fmt.Fprintln(p.out)
			p.table("Testautomation results:", outcome.Others, outcome.AutomationNames, outcome.AutomationResults)
		} else {
			fmt.Fprintln(p.out, "No testautomation tests")
		}
	}

	if len(outcome.UnitNames) > 0 {
		fmt.Fprintln(p.out)
		p.table("Test results:", outcome.Others, outcome.UnitNames, outcome.UnitResults)
	} else {
		fmt.Fprintln(p.out, "No tests")
	}
}

func (p *ReportPrinter) table(title string, tags []*entities.Tag, names []string, results *entities.ResultMatrix) {
	labelWidth := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > labelWidth {
			labelWidth = w
		}
	}

	tagNames := make([]string, len(tags))
	versions := make([]string, len(tags))
	for i, tag := range tags {
		tagNames[i] = center(tag.Name, ColumnWidth)
		versions[i] = center(tag.Version.String(), ColumnWidth)
	}

	corner := text.AlignRight.Apply("|", labelWidth+1)
	title1 := corner + strings.Join(tagNames, "|")
	title2 := corner + strings.Join(versions, "|")

	fmt.Fprintln(p.out, title)
	fmt.Fprintln(p.out, p.styles.Render(p.styles.Header, title1))
	fmt.Fprintln(p.out, p.styles.Render(p.styles.Header, title2))
	fmt.Fprintln(p.out, strings.Repeat("-", runewidth.StringWidth(title1)))

	for _, name := range names {
		cells := make([]string, len(tags))
		for i, tag := range tags {
			cells[i] = p.cell(results.Lookup(tag.Name, name))
		}
		fmt.Fprintln(p.out, text.AlignLeft.Apply(name, labelWidth)+"|"+strings.Join(cells, "|"))
	}
}

// cell centres the result before styling so escape sequences never shift
// the column
func (p *ReportPrinter) cell(r entities.TestResult) string {
	word := r.String()
	padded := center(word, ColumnWidth)
	styled := p.styles.Render(p.styles.ForResult(r), word)
	return strings.Replace(padded, word, styled, 1)
}

// center pads s to width with the odd space of the padding on the right
func center(s string, width int) string {
	left := (width - runewidth.StringWidth(s)) / 2
	if left < 0 {
		left = 0
	}
	return text.AlignLeft.Apply(strings.Repeat(" ", left)+s, width)
}
