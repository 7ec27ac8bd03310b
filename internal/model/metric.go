package model

import "sort"

// MetricSummary maps a metric key (e.g. "bugs", "code_smells") to the value
// SonarQube reported for it. Values are kept as the server's strings; the
// report renders them verbatim and never does arithmetic on them.
type MetricSummary map[string]string

// Value returns the value for the metric key, or "0" when the server did not
// report the metric at all. Rendering a zero instead of omitting the row
// keeps the overview table shape stable across projects.
func (m MetricSummary) Value(key string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return "0"
}

// Keys returns the metric keys in sorted order.
// Map iteration order is random; writers need a deterministic row order so
// that identical inputs produce identical report bytes.
func (m MetricSummary) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
