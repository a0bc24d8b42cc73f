package chat

import (
	"strings"

	"agridata/internal/normalize"
)

// offlineSource marks canned answers so callers (and tests) can tell
// them apart from model-generated ones.
const offlineSource = "offline fallback"

// ExampleQuestions are suggested starting points surfaced to clients.
var ExampleQuestions = []string{
	"Which district in Punjab had the highest rainfall in 2022?",
	"Compare wheat production across districts in Uttar Pradesh",
	"Show me the rice production trend in Ludhiana from 2018 to 2022",
	"Which crops are grown in the driest districts of Rajasthan?",
}

type cannedAnswer struct {
	keywords []string
	response normalize.Response
}

// The canned bank covers the example questions with figures taken
// from the seed catalog, so offline answers stay consistent with what
// the model would have seen.
var cannedAnswers = []cannedAnswer{
	{
		keywords: []string{"rainfall", "punjab"},
		response: normalize.Response{
			Answer: "Based on the rainfall data for 2022, Ludhiana had the highest annual rainfall in Punjab at 720.8 mm, ahead of Patiala (715.5 mm) and Amritsar (710.2 mm). For comparison, Pune in Maharashtra recorded 650.5 mm the same year.",
			Citations: []normalize.Citation{
				{Dataset: "Rainfall Data", Source: offlineSource},
			},
			Visualizations: []normalize.Visualization{{
				Type:  normalize.ChartBar,
				Title: "Annual rainfall by Punjab district, 2022 (mm)",
				Data: []map[string]any{
					{"District": "Ludhiana", "Annual_Rainfall_mm": 720.8},
					{"District": "Patiala", "Annual_Rainfall_mm": 715.5},
					{"District": "Amritsar", "Annual_Rainfall_mm": 710.2},
				},
				XKey: "District",
				YKey: "Annual_Rainfall_mm",
			}},
		},
	},
	{
		keywords: []string{"wheat", "uttar pradesh"},
		response: normalize.Response{
			Answer: "In 2022, wheat production in Uttar Pradesh was led by Lucknow with 5,250 tonnes, followed by Kanpur with 4,900 tonnes and Varanasi with 4,200 tonnes. All three districts achieved a yield of 3.5 tonnes per hectare.",
			Citations: []normalize.Citation{
				{Dataset: "Crop Production Data", Source: offlineSource},
			},
			Visualizations: []normalize.Visualization{{
				Type:  normalize.ChartBar,
				Title: "Wheat production in Uttar Pradesh, 2022 (tonnes)",
				Data: []map[string]any{
					{"District": "Lucknow", "Production": 5250},
					{"District": "Kanpur", "Production": 4900},
					{"District": "Varanasi", "Production": 4200},
				},
				XKey: "District",
				YKey: "Production",
			}},
		},
	},
	{
		keywords: []string{"rice", "trend"},
		response: normalize.Response{
			Answer: "Rice production in Ludhiana rose steadily from 6,125 tonnes in 2018 to 7,000 tonnes in 2022, with yield holding at 3.5 tonnes per hectare throughout. The growth came entirely from expanding cultivated area (1,750 to 2,000 hectares).",
			Citations: []normalize.Citation{
				{Dataset: "Crop Production Data", Source: offlineSource},
			},
			Visualizations: []normalize.Visualization{{
				Type:  normalize.ChartLine,
				Title: "Rice production in Ludhiana, 2018-2022 (tonnes)",
				Data: []map[string]any{
					{"Year": 2018, "Production": 6125},
					{"Year": 2019, "Production": 6300},
					{"Year": 2020, "Production": 6475},
					{"Year": 2021, "Production": 6650},
					{"Year": 2022, "Production": 7000},
				},
				XKey: "Year",
				YKey: "Production",
			}},
		},
	},
	{
		keywords: []string{"rajasthan"},
		response: normalize.Response{
			Answer: "Rajasthan's driest district, Jodhpur (380.7 mm annual rainfall in 2022), grows drought-resistant crops: bajra (2,400 tonnes) and guar (900 tonnes). Jaipur (550.2 mm) grows bajra and jowar, while Udaipur (620.5 mm) adds cotton.",
			Citations: []normalize.Citation{
				{Dataset: "Crop Production Data", Source: offlineSource},
				{Dataset: "Rainfall Data", Source: offlineSource},
			},
		},
	},
}

var defaultOfflineResponse = normalize.Response{
	Answer:    "I'm currently unable to reach the analysis service. The loaded datasets cover crop production and rainfall across Indian states and districts for 2018-2022; please try your question again in a moment.",
	Citations: []normalize.Citation{},
}

// offlineAnswer picks a canned response matching the question, or a
// generic notice when nothing matches. Matching requires every
// keyword of an entry to appear in the lowercased question; entries
// are checked in order and the first full match wins.
func offlineAnswer(question string) normalize.Response {
	q := strings.ToLower(question)
	for _, c := range cannedAnswers {
		if matchesAll(q, c.keywords) {
			return c.response
		}
	}
	return defaultOfflineResponse
}

func matchesAll(q string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(q, k) {
			return false
		}
	}
	return true
}
