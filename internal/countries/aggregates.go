package countries

import "strings"

// aggregateHint flags non-country aggregate rows (regions, income groups,
// institutional groupings) by substring containment against the comparison
// key. The category is a diagnostic label only and is never substituted into
// output; aggregates pass through with their original text.
type aggregateHint struct {
	token    string
	category string
}

var aggregateHints = []aggregateHint{
	{"world", "World"},
	{"euro area", "Euro area"},
	{"europe", "Europe"},
	{"sub saharan", "Sub-Saharan Africa"},
	{"latin america", "Latin America & Caribbean"},
	{"east asia", "East Asia & Pacific"},
	{"south asia", "South Asia"},
	{"middle east", "Middle East & North Africa"},
	{"ibrd", "IBRD"},
	{"ida", "IDA"},
	{"oecd", "OECD"},
	{"income", "income"},
	{"demographic dividend", "demographic dividend"},
}

// IsAggregate reports whether a comparison key looks like a non-country
// aggregate row. Substring containment is a deliberate heuristic carried over
// from the curation workflow; edge-case region names may misfire either way.
func IsAggregate(key string) bool {
	_, ok := AggregateCategory(key)
	return ok
}

// AggregateCategory returns the diagnostic label of the first hint contained
// in the key.
func AggregateCategory(key string) (string, bool) {
	for _, h := range aggregateHints {
		if strings.Contains(key, h.token) {
			return h.category, true
		}
	}
	return "", false
}
