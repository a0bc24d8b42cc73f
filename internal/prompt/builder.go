// Package prompt renders the single-turn prompt sent to the model: an
// analyst system preamble, a summary of every loaded dataset, the
// user's question, and the full dataset rows. Building is pure; the
// same question and datasets always render the same string.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"agridata/internal/dataset"
)

const sampleRows = 5

const preamble = `You are an expert data analyst specializing in Indian agricultural and climate data.
Your task is to answer questions based on the available datasets with precise, data-backed answers.`

const instructions = `Instructions:
1. Analyze the user's question carefully
2. Identify which datasets are relevant
3. Extract and process the data to answer the question
4. ALWAYS cite specific sources (dataset name and relevant data points)
5. When applicable, suggest visualizations (bar chart, line chart, or table)
6. Be precise with numbers and comparisons
7. If data is insufficient, state what's missing`

const responseFormat = `Response format:
{
  "answer": "Your detailed answer with specific numbers and insights",
  "citations": [{"dataset": "dataset_name", "source": "specific data reference"}],
  "visualizations": {
    "type": "bar|line|table",
    "title": "Chart title",
    "data": [...],
    "xKey": "field name",
    "yKey": "field name",
    "series": ["series1", "series2"]
  }
}`

// Build renders the prompt for one question over the given datasets.
func Build(question string, datasets []dataset.Dataset) string {
	var b strings.Builder

	b.WriteString(preamble)
	b.WriteString("\n\nAvailable datasets:\n")
	for _, d := range datasets {
		writeSummary(&b, d)
	}

	b.WriteString("\n")
	b.WriteString(instructions)
	b.WriteString("\n\n")
	b.WriteString(responseFormat)

	fmt.Fprintf(&b, "\n\nUser question: %s\n", question)

	b.WriteString("\nFull datasets:\n")
	b.WriteString(marshal(datasets))

	b.WriteString("\n\nProvide your response as valid JSON only, no markdown formatting.")
	return b.String()
}

// writeSummary renders one dataset header: its metadata, field types,
// coverage facets, and a handful of sample rows.
func writeSummary(b *strings.Builder, d dataset.Dataset) {
	fmt.Fprintf(b, "\n### %s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(b, "%s\n", d.Description)
	}
	if d.SourceURL != "" {
		fmt.Fprintf(b, "Source: %s\n", d.SourceURL)
	}

	if len(d.Fields) > 0 {
		b.WriteString("Fields:\n")
		for _, name := range sortedKeys(d.Fields) {
			fmt.Fprintf(b, "  - %s: %s\n", name, d.Fields[name])
		}
	}

	f := dataset.DeriveFacets(d, 0)
	if len(f.States) > 0 {
		fmt.Fprintf(b, "States covered: %s\n", strings.Join(f.States, ", "))
	}
	if len(f.Districts) > 0 {
		fmt.Fprintf(b, "Districts covered: %s\n", strings.Join(f.Districts, ", "))
	}
	if f.MinYear != 0 {
		fmt.Fprintf(b, "Years covered: %d-%d\n", f.MinYear, f.MaxYear)
	}

	n := len(d.Data)
	if n > sampleRows {
		n = sampleRows
	}
	if n > 0 {
		fmt.Fprintf(b, "Sample rows (%d of %d):\n%s\n", n, len(d.Data), marshal(d.Data[:n]))
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic field order keeps the prompt stable across runs.
	sort.Strings(keys)
	return keys
}

func marshal(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
