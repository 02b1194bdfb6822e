// README: Itinerary request/result types and pipeline error classification.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultDays is used when the form sends no usable trip duration.
	DefaultDays = 3
	// DefaultDailyBudgetUSD multiplies Days when the form sends no usable budget.
	DefaultDailyBudgetUSD = 50
	// DefaultInterest stands in for an empty interest list in the prompt.
	DefaultInterest = "sightseeing"
	// DefaultPreferences stands in for empty free-text preferences.
	DefaultPreferences = "none"
	// Currency is the only currency the planner quotes in.
	Currency = "USD"
	// FormatFailureMessage is the user-facing text for unusable model output.
	FormatFailureMessage = "Model did not return valid JSON"
)

// Request is the normalized form input. Build it with Normalize.
type Request struct {
	Origin      string
	Destination string
	StartDate   string
	Days        int
	BudgetUSD   float64
	Interests   []string
	Preferences string
}

// InterestText joins the interests for the prompt.
func (r Request) InterestText() string {
	if len(r.Interests) == 0 {
		return DefaultInterest
	}
	return strings.Join(r.Interests, ", ")
}

// Result is the itinerary the model is asked to produce. Decode also keeps the
// object as the model sent it; JSON returns that body.
type Result struct {
	TripSummary        string             `json:"trip_summary"`
	TotalEstimatedCost float64            `json:"total_estimated_cost"`
	WithinBudget       bool               `json:"within_budget"`
	Currency           string             `json:"currency"`
	BudgetBreakdown    map[string]float64 `json:"budget_breakdown"`
	Days               []DayPlan          `json:"itinerary"`
	Tips               []string           `json:"tips"`

	body json.RawMessage
}

// JSON returns the decoded object as received, keys outside Result included.
// A Result built by hand is marshaled instead.
func (r *Result) JSON() (json.RawMessage, error) {
	if len(r.body) > 0 {
		return r.body, nil
	}
	return json.Marshal(r)
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day           float64 `json:"day"`
	Date          string  `json:"date"`
	Title         string  `json:"title"`
	Morning       string  `json:"morning"`
	Afternoon     string  `json:"afternoon"`
	Evening       string  `json:"evening"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// OutcomeKind tells callers how to report a Generate call.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFormatFailure means the model answered but the text was unusable.
	OutcomeFormatFailure
	// OutcomeTransportFailure means the model could not be reached or refused the call.
	OutcomeTransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFormatFailure:
		return "format_failure"
	default:
		return "transport_failure"
	}
}

// FormatError is returned when the model text is not a valid itinerary object.
// Raw holds the fence-stripped text for debugging.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("model did not return valid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// TransportError wraps any failure of the text-generation call itself.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Classify maps an error returned by Service.Generate to an OutcomeKind.
// Unknown errors are treated as transport failures.
func Classify(err error) OutcomeKind {
	if err == nil {
		return OutcomeSuccess
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return OutcomeFormatFailure
	}
	return OutcomeTransportFailure
}
