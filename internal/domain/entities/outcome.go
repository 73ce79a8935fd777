package entities

// Outcome is everything a compatibility run produced, ready for reporting
type Outcome struct {
	Others            []*Tag
	DUT               *Tag
	UnitResults       *ResultMatrix
	AutomationResults *ResultMatrix
	UnitNames         []string
	AutomationNames   []string
	AutomationEnabled bool
	Success           bool
}
