package dataset

import "sort"

// Facets summarizes the distinct geographic and temporal coverage of
// a dataset. The prompt builder includes facets so the model knows
// which states, districts, and years it can answer about without
// seeing every row.
type Facets struct {
	States    []string
	Districts []string
	MinYear   int
	MaxYear   int
}

// DeriveFacets scans a dataset's rows for distinct State and District
// values and the Year range. Each name list is capped at limit
// entries after sorting; a limit of 0 or less means no cap. Rows with
// missing or non-numeric fields are skipped for that facet.
func DeriveFacets(d Dataset, limit int) Facets {
	states := map[string]struct{}{}
	districts := map[string]struct{}{}
	var f Facets

	for _, row := range d.Data {
		if s, ok := row["State"].(string); ok && s != "" {
			states[s] = struct{}{}
		}
		if s, ok := row["District"].(string); ok && s != "" {
			districts[s] = struct{}{}
		}
		if y, ok := toYear(row["Year"]); ok {
			if f.MinYear == 0 || y < f.MinYear {
				f.MinYear = y
			}
			if y > f.MaxYear {
				f.MaxYear = y
			}
		}
	}

	f.States = sortedCapped(states, limit)
	f.Districts = sortedCapped(districts, limit)
	return f
}

// toYear accepts the numeric types JSON decoding and Go literals
// produce for a year value.
func toYear(v any) (int, bool) {
	switch y := v.(type) {
	case int:
		return y, true
	case int64:
		return int(y), true
	case float64:
		return int(y), true
	default:
		return 0, false
	}
}

func sortedCapped(set map[string]struct{}, limit int) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
