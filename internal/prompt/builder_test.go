package prompt

import (
	"strings"
	"testing"

	"agridata/internal/dataset"
)

func testDatasets() []dataset.Dataset {
	return []dataset.Dataset{
		{
			Name:        "Crop Production Data",
			Description: "Production figures by district",
			SourceURL:   "data.gov.in",
			Fields: map[string]string{
				"State": "text",
				"Year":  "number",
				"Crop":  "text",
			},
			Data: []map[string]any{
				{"State": "Punjab", "District": "Ludhiana", "Year": 2022, "Crop": "Wheat"},
				{"State": "Punjab", "District": "Amritsar", "Year": 2021, "Crop": "Rice"},
			},
		},
	}
}

func TestBuildContainsQuestionAndDatasets(t *testing.T) {
	p := Build("Which district grew the most wheat?", testDatasets())

	for _, want := range []string{
		"expert data analyst",
		"User question: Which district grew the most wheat?",
		"Crop Production Data",
		"Production figures by district",
		"data.gov.in",
		"States covered: Punjab",
		"Districts covered: Amritsar, Ludhiana",
		"Years covered: 2021-2022",
		"valid JSON only",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	ds := testDatasets()
	a := Build("q", ds)
	for i := 0; i < 10; i++ {
		if b := Build("q", ds); b != a {
			t.Fatal("prompt output varies across builds with identical input")
		}
	}
}

func TestBuildIncludesResponseContract(t *testing.T) {
	p := Build("anything", nil)

	for _, want := range []string{`"answer"`, `"citations"`, `"visualizations"`, `"bar|line|table"`} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing response contract fragment %q", want)
		}
	}
}

func TestBuildCapsSampleRows(t *testing.T) {
	d := testDatasets()[0]
	for i := 0; i < 50; i++ {
		d.Data = append(d.Data, map[string]any{"State": "Punjab", "Year": 2020})
	}

	p := Build("q", []dataset.Dataset{d})
	if !strings.Contains(p, "Sample rows (5 of 52):") {
		t.Errorf("expected sample rows capped at 5, prompt header not found")
	}
}
