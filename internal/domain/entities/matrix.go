package entities

// ResultMatrix records one result per (tag, test) pair
type ResultMatrix struct {
	results map[string]map[string]TestResult
	order   map[string][]string
}

// NewResultMatrix creates an empty matrix
func NewResultMatrix() *ResultMatrix {
	return &ResultMatrix{
		results: make(map[string]map[string]TestResult),
		order:   make(map[string][]string),
	}
}

// Open registers a tag so it appears in the matrix even with no results
func (m *ResultMatrix) Open(tag string) {
	if _, ok := m.results[tag]; !ok {
		m.results[tag] = make(map[string]TestResult)
	}
}

// Record stores the result of a test for a tag
func (m *ResultMatrix) Record(tag, test string, result TestResult) {
	m.Open(tag)
	if _, ok := m.results[tag][test]; !ok {
		m.order[tag] = append(m.order[tag], test)
	}
	m.results[tag][test] = result
}

// Lookup returns the recorded result, or ResultNotApplicable when absent
func (m *ResultMatrix) Lookup(tag, test string) TestResult {
	if r, ok := m.results[tag][test]; ok {
		return r
	}
	return ResultNotApplicable
}

// HasTag reports whether the tag was opened or has results
func (m *ResultMatrix) HasTag(tag string) bool {
	_, ok := m.results[tag]
	return ok
}

// Tests returns the tests recorded for a tag in recording order
func (m *ResultMatrix) Tests(tag string) []string {
	return append([]string(nil), m.order[tag]...)
}

// Len returns the number of recorded results across all tags
func (m *ResultMatrix) Len() int {
	n := 0
	for _, tests := range m.results {
		n += len(tests)
	}
	return n
}
