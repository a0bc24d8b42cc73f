package normalize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNormalize_ValidJSON(t *testing.T) {
	raw := `{"answer":"Punjab had higher rainfall","citations":[{"dataset":"Rainfall Data","source":"Ludhiana 2022"}],"visualizations":null}`

	want := Response{
		Answer:    "Punjab had higher rainfall",
		Citations: []Citation{{Dataset: "Rainfall Data", Source: "Ludhiana 2022"}},
	}
	if diff := cmp.Diff(want, Normalize(raw)); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MarkdownFenced(t *testing.T) {
	raw := "```json\n{\"answer\":\"x\",\"citations\":[]}\n```"

	res := Normalize(raw)
	if res.Answer != "x" {
		t.Fatalf("Answer = %q, want x", res.Answer)
	}
	if res.Citations == nil || len(res.Citations) != 0 {
		t.Fatalf("Citations = %v, want empty", res.Citations)
	}
}

func TestNormalize_FenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"answer\":\"y\"}\n```"

	res := Normalize(raw)
	if res.Answer != "y" {
		t.Fatalf("Answer = %q, want y", res.Answer)
	}
}

// Totality: every input, however broken, yields a non-empty answer and
// an array-typed citations field. Normalize must never panic.
func TestNormalize_Totality(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t  ",
		"not json at all",
		`{"answer": "x`, // truncated
		"```json\n{\"answer\":\"x\"}\n```",
		`{"answer": 42, "citations": "nope", "visualizations": true}`,
		`[1, 2, 3]`,
		`"just a string"`,
		"{{{{",
		`{"answer":"ok"} trailing garbage }`,
		strings.Repeat("{", 10000),
	}

	for _, in := range inputs {
		res := Normalize(in)
		if strings.TrimSpace(res.Answer) == "" {
			t.Errorf("input %q: empty answer", truncate(in))
		}
		if res.Citations == nil {
			t.Errorf("input %q: nil citations", truncate(in))
		}
	}
}

func TestNormalize_EmptyInputGetsApology(t *testing.T) {
	res := Normalize("")
	if res.Answer != Apology {
		t.Fatalf("Answer = %q, want apology", res.Answer)
	}
	if len(res.Citations) != 0 {
		t.Fatalf("Citations = %v, want empty", res.Citations)
	}
	if res.Visualizations != nil {
		t.Fatalf("Visualizations = %v, want nil", res.Visualizations)
	}
}

func TestNormalize_ParseFailureKeepsRawText(t *testing.T) {
	raw := "The model decided to answer in prose instead of JSON."

	res := Normalize(raw)
	if res.Answer != raw {
		t.Fatalf("Answer = %q, want raw text", res.Answer)
	}
}

// Longest balanced span wins over first: the shorter span appearing
// earlier must not be selected.
func TestNormalize_LongestMatchExtraction(t *testing.T) {
	raw := `noise {"a":{"b":1}} more {"answer":"ok","citations":[],"extra":"padding padding"}`

	res := Normalize(raw)
	if res.Answer != "ok" {
		t.Fatalf("Answer = %q, want ok (longest span should be parsed)", res.Answer)
	}
}

func TestNormalize_BracesInsideStringsIgnored(t *testing.T) {
	raw := `prefix {"answer":"look: } and { inside a string","citations":[]} suffix`

	res := Normalize(raw)
	if res.Answer != "look: } and { inside a string" {
		t.Fatalf("Answer = %q", res.Answer)
	}
}

func TestNormalize_BareArrayPayload(t *testing.T) {
	raw := `the data: [{"answer":"from array","citations":[]}]`

	res := Normalize(raw)
	if res.Answer != "from array" {
		t.Fatalf("Answer = %q, want from array", res.Answer)
	}
}

func TestNormalize_MissingAnswerUsesCandidateText(t *testing.T) {
	raw := `{"citations":[],"note":"model forgot the answer field"}`

	res := Normalize(raw)
	if !strings.Contains(res.Answer, "model forgot") {
		t.Fatalf("Answer = %q, want candidate text substituted", res.Answer)
	}
}

func TestNormalize_SingleVisualization(t *testing.T) {
	raw := `{"answer":"x","citations":[],"visualizations":{"type":"line","title":"Rainfall","data":[{"Year":2022,"mm":650.5}],"xKey":"Year","yKey":"mm"}}`

	res := Normalize(raw)
	viz, ok := res.Visualizations.(Visualization)
	if !ok {
		t.Fatalf("Visualizations = %T, want Visualization", res.Visualizations)
	}
	if viz.Type != ChartLine || viz.Title != "Rainfall" || viz.XKey != "Year" {
		t.Fatalf("viz = %+v", viz)
	}
	if len(viz.Data) != 1 {
		t.Fatalf("Data rows = %d, want 1", len(viz.Data))
	}
}

// A visualization with zero rows is equivalent to no visualization,
// whether it arrives as a single object or as the sole array element.
func TestNormalize_EmptyVisualizationBecomesNil(t *testing.T) {
	cases := []string{
		`{"answer":"x","citations":[],"visualizations":{"type":"bar","title":"t","data":[]}}`,
		`{"answer":"x","citations":[],"visualizations":[{"type":"bar","title":"t","data":[]}]}`,
		`{"answer":"x","citations":[],"visualizations":{"type":"bar","title":"t"}}`,
	}
	for _, raw := range cases {
		res := Normalize(raw)
		if res.Visualizations != nil {
			t.Errorf("input %s: Visualizations = %v, want nil", raw, res.Visualizations)
		}
	}
}

func TestNormalize_VisualizationArrayFiltering(t *testing.T) {
	raw := `{"answer":"x","citations":[],"visualizations":[
		{"title":"kept","data":[{"x":1}]},
		{"type":"line","title":"dropped","data":[]},
		"not an object"
	]}`

	res := Normalize(raw)
	vizzes, ok := res.Visualizations.([]Visualization)
	if !ok {
		t.Fatalf("Visualizations = %T, want []Visualization", res.Visualizations)
	}
	if len(vizzes) != 1 {
		t.Fatalf("kept %d visualizations, want 1", len(vizzes))
	}
	if vizzes[0].Title != "kept" {
		t.Fatalf("kept wrong element: %+v", vizzes[0])
	}
	if vizzes[0].Type != ChartBar {
		t.Fatalf("Type = %q, want bar default", vizzes[0].Type)
	}
}

func TestNormalize_UnknownChartTypeDefaultsToBar(t *testing.T) {
	raw := `{"answer":"x","citations":[],"visualizations":{"type":"pie","data":[{"x":1}]}}`

	res := Normalize(raw)
	viz, ok := res.Visualizations.(Visualization)
	if !ok {
		t.Fatalf("Visualizations = %T", res.Visualizations)
	}
	if viz.Type != ChartBar {
		t.Fatalf("Type = %q, want bar", viz.Type)
	}
}

func TestNormalize_ScalarVisualizationBecomesNil(t *testing.T) {
	for _, raw := range []string{
		`{"answer":"x","citations":[],"visualizations":"bar"}`,
		`{"answer":"x","citations":[],"visualizations":7}`,
		`{"answer":"x","citations":[],"visualizations":true}`,
	} {
		res := Normalize(raw)
		if res.Visualizations != nil {
			t.Errorf("input %s: Visualizations = %v, want nil", raw, res.Visualizations)
		}
	}
}

func TestNormalize_CitationCoercion(t *testing.T) {
	raw := `{"answer":"x","citations":[{"dataset":"Crop Production Data","source":"Pune 2022"},{"bogus":1},"string"]}`

	res := Normalize(raw)
	if len(res.Citations) != 1 {
		t.Fatalf("Citations = %+v, want 1 entry", res.Citations)
	}
	if res.Citations[0].Source != "Pune 2022" {
		t.Fatalf("Citations[0] = %+v", res.Citations[0])
	}
}

func TestNormalize_NonSequenceCitations(t *testing.T) {
	raw := `{"answer":"x","citations":"Rainfall Data"}`

	res := Normalize(raw)
	if res.Citations == nil || len(res.Citations) != 0 {
		t.Fatalf("Citations = %v, want empty slice", res.Citations)
	}
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
