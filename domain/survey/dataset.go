package survey

import (
	"sort"
)

// Dataset is the survey table, loaded once at process start and never
// mutated afterwards. Aggregation always receives it explicitly; there
// is no ambient global copy.
type Dataset struct {
	records []Record
	source  string
}

// NewDataset creates a dataset from parsed records
func NewDataset(records []Record, source string) *Dataset {
	return &Dataset{records: records, source: source}
}

// Records returns the full record view. Callers must treat it as
// read-only.
func (d *Dataset) Records() []Record {
	return d.records
}

// Len returns the number of respondents
func (d *Dataset) Len() int {
	return len(d.records)
}

// Source returns the path the dataset was loaded from
func (d *Dataset) Source() string {
	return d.source
}

// Ages returns the distinct age bands, sorted
func (d *Dataset) Ages() []string {
	return d.distinct(ColAge)
}

// Incomes returns the distinct income bands, sorted
func (d *Dataset) Incomes() []string {
	return d.distinct(ColIncome)
}

// Locations returns the distinct locations, sorted
func (d *Dataset) Locations() []string {
	return d.distinct(ColLocation)
}

func (d *Dataset) distinct(column string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range d.records {
		v := rec.Field(column)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
