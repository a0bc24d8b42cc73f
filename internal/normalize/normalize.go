// Package normalize converts raw LLM output into the structured
// answer/citations/visualizations contract the rest of the system
// relies on. The model's reply is untrusted text: it may be valid
// JSON, JSON wrapped in markdown fences, JSON buried in prose,
// truncated mid-object, or no JSON at all. Normalize is total — for
// any input string it returns a well-formed Response and never fails.
package normalize

import (
	"encoding/json"
	"strings"
)

// Apology is the answer of last resort, used when no text at all can
// be recovered from the model's reply.
const Apology = "I'm sorry, I wasn't able to produce an answer for that question. Please try rephrasing it."

// Citation points from an answer to the dataset and data it relies on.
type Citation struct {
	Dataset string `json:"dataset"`
	Source  string `json:"source"`
}

// Visualization is a chart or table specification derived from an
// answer. Data is always non-empty: a visualization with no rows is
// normalized to absence, never to an empty object.
type Visualization struct {
	Type   string           `json:"type"`
	Title  string           `json:"title"`
	Data   []map[string]any `json:"data"`
	XKey   string           `json:"xKey,omitempty"`
	YKey   string           `json:"yKey,omitempty"`
	Series []string         `json:"series,omitempty"`
}

// Chart types accepted from the model. Anything else is coerced to bar.
const (
	ChartBar   = "bar"
	ChartLine  = "line"
	ChartTable = "table"
)

// Response is the normalized result of one LLM reply.
// Invariants: Answer is non-empty, Citations is non-nil.
// Visualizations is nil, a single Visualization, or []Visualization.
type Response struct {
	Answer         string     `json:"answer"`
	Citations      []Citation `json:"citations"`
	Visualizations any        `json:"visualizations"`
}

// Normalize parses raw model output into a Response, applying a
// sequence of recovery steps:
//
//  1. strip markdown code fences
//  2. if the text is not JSON outright, extract the longest balanced
//     {...} span (longest wins over first, so a complete payload beats
//     a nested fragment)
//  3. failing that, extract the longest [...] span
//  4. parse the candidate; on failure fall back to the raw text
//  5. coerce fields: missing answer becomes the candidate text,
//     missing citations become empty, visualizations are filtered so
//     zero-row entries disappear and missing chart types default to bar
//
// A final guarantee pass runs unconditionally: the returned Response
// always has a non-empty Answer and a non-nil Citations slice.
func Normalize(raw string) Response {
	resp := normalize(raw)

	// Contract boundary: re-check regardless of which path produced resp.
	if strings.TrimSpace(resp.Answer) == "" {
		resp.Answer = Apology
	}
	if resp.Citations == nil {
		resp.Citations = []Citation{}
	}
	return resp
}

func normalize(raw string) Response {
	text := stripFences(raw)

	candidate := text
	parsed, ok := tryParse(candidate)
	if !ok {
		if span := longestSpan(text, '{', '}'); span != "" {
			candidate = span
		} else if span := longestSpan(text, '[', ']'); span != "" {
			candidate = span
		}
		parsed, ok = tryParse(candidate)
	}
	if !ok {
		// Parse failed outright: keep whatever the model said as the
		// answer so information is not silently dropped.
		return fallback(raw)
	}

	obj := asObject(parsed)
	if obj == nil {
		return Response{Answer: candidate, Citations: []Citation{}}
	}

	return Response{
		Answer:         coerceAnswer(obj["answer"], candidate),
		Citations:      coerceCitations(obj["citations"]),
		Visualizations: coerceVisualizations(obj["visualizations"]),
	}
}

// stripFences removes leading/trailing triple-backtick markers,
// optionally followed by a language tag, plus surrounding whitespace.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		// Drop a language tag like "json" up to the first newline.
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			tag := strings.TrimSpace(s[:nl])
			if tag != "" && !strings.ContainsAny(tag, "{}[]\"") {
				s = s[nl+1:]
			}
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func tryParse(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		return v, true
	}
	// Bare strings/numbers are structurally valid JSON but carry no
	// payload shape worth coercing.
	return nil, false
}

// asObject reduces a parsed value to the payload object. A bare array
// reply is accepted when its first element is an object.
func asObject(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case []any:
		if len(t) > 0 {
			if obj, ok := t[0].(map[string]any); ok {
				return obj
			}
		}
	}
	return nil
}

func fallback(raw string) Response {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		answer = Apology
	}
	return Response{Answer: answer, Citations: []Citation{}}
}

func coerceAnswer(v any, candidate string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return candidate
}

func coerceCitations(v any) []Citation {
	seq, ok := v.([]any)
	if !ok {
		return []Citation{}
	}
	out := make([]Citation, 0, len(seq))
	for _, e := range seq {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		c := Citation{}
		if s, ok := m["dataset"].(string); ok {
			c.Dataset = s
		}
		if s, ok := m["source"].(string); ok {
			c.Source = s
		}
		if c.Dataset == "" && c.Source == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// coerceVisualizations handles the three shapes the model emits:
// a sequence of viz objects, a single viz object, or garbage.
// Zero-row entries are dropped; an empty result collapses to nil.
func coerceVisualizations(v any) any {
	switch t := v.(type) {
	case []any:
		kept := make([]Visualization, 0, len(t))
		for _, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			if viz, ok := coerceViz(m); ok {
				kept = append(kept, viz)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return kept
	case map[string]any:
		if viz, ok := coerceViz(t); ok {
			return viz
		}
		return nil
	default:
		return nil
	}
}

func coerceViz(m map[string]any) (Visualization, bool) {
	rows := coerceRows(m["data"])
	if len(rows) == 0 {
		// Empty visualization is equivalent to no visualization.
		return Visualization{}, false
	}

	viz := Visualization{Type: ChartBar, Data: rows}
	if s, ok := m["type"].(string); ok {
		switch s {
		case ChartBar, ChartLine, ChartTable:
			viz.Type = s
		}
	}
	if s, ok := m["title"].(string); ok {
		viz.Title = s
	}
	if s, ok := m["xKey"].(string); ok {
		viz.XKey = s
	}
	if s, ok := m["yKey"].(string); ok {
		viz.YKey = s
	}
	if seq, ok := m["series"].([]any); ok {
		for _, e := range seq {
			if s, ok := e.(string); ok {
				viz.Series = append(viz.Series, s)
			}
		}
	}
	return viz, true
}

func coerceRows(v any) []map[string]any {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(seq))
	for _, e := range seq {
		if m, ok := e.(map[string]any); ok {
			rows = append(rows, m)
		}
	}
	return rows
}
