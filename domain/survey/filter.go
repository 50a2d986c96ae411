package survey

// FilterSet holds the active facet selections. An empty slice means
// "no restriction" for that facet, so the zero FilterSet matches every
// record.
type FilterSet struct {
	Ages      []string
	Incomes   []string
	Locations []string
}

// IsZero reports whether no facet is restricted
func (f FilterSet) IsZero() bool {
	return len(f.Ages) == 0 && len(f.Incomes) == 0 && len(f.Locations) == 0
}

// Matches reports whether a record passes every active facet
func (f FilterSet) Matches(rec Record) bool {
	if !matchesFacet(rec.Age, f.Ages) {
		return false
	}
	if !matchesFacet(rec.Income, f.Incomes) {
		return false
	}
	return matchesFacet(rec.Location, f.Locations)
}

// Apply returns the records passing the filter. With no active facets
// the input slice is returned unchanged.
func (f FilterSet) Apply(records []Record) []Record {
	if f.IsZero() {
		return records
	}
	var out []Record
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesFacet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}
