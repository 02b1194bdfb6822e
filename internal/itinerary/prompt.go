package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

// resultSchema is the literal shape the model must answer with.
const resultSchema = `{
  "trip_summary": string,
  "total_estimated_cost": number,
  "within_budget": boolean,
  "currency": "USD",
  "budget_breakdown": {
    "transport": number,
    "food": number,
    "activities": number,
    "accommodation": number,
    "other": number
  },
  "itinerary": [
    {
      "day": number,
      "date": "YYYY-MM-DD",
      "title": string,
      "morning": string,
      "afternoon": string,
      "evening": string,
      "estimated_cost": number
    }
  ],
  "tips": [ string ]
}`

// BuildPrompt renders the planner instructions for req.
// A non-empty travelHint is appended as background for the transport estimate.
func BuildPrompt(req Request, travelHint string) string {
	var b strings.Builder
	b.WriteString("You are a travel planner for university students on a budget.\n")
	fmt.Fprintf(&b, "Create a %d-day itinerary from %q to %q starting on %s.\n",
		req.Days, req.Origin, req.Destination, req.StartDate)
	fmt.Fprintf(&b, "Budget (USD): %s. Interests: %s. Preferences: %s.\n",
		strconv.FormatFloat(req.BudgetUSD, 'f', -1, 64), req.InterestText(), req.Preferences)
	if hint := strings.TrimSpace(travelHint); hint != "" {
		fmt.Fprintf(&b, "Travel note: the trip from origin to destination takes %s.\n", hint)
	}
	b.WriteString("\nIMPORTANT: Respond with ONLY valid JSON (no Markdown fences, no explanations). Use this exact schema:\n")
	b.WriteString(resultSchema)
	b.WriteString("\nMake sure each numeric field is a number (not a string).\n")
	b.WriteString("Include at least one low-cost/free activity per day and suggest student-friendly transport options.\n")
	return b.String()
}
