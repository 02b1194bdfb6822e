package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNotObject = errors.New("top-level value is not a JSON object")

// numericFields mirrors the numeric parts of Result as raw tokens so present
// values can be checked before the typed decode zeroes a null.
type numericFields struct {
	TotalEstimatedCost json.RawMessage            `json:"total_estimated_cost"`
	BudgetBreakdown    map[string]json.RawMessage `json:"budget_breakdown"`
	Days               []struct {
		Day           json.RawMessage `json:"day"`
		EstimatedCost json.RawMessage `json:"estimated_cost"`
	} `json:"itinerary"`
}

// StripFences removes Markdown code-fence markers (```json and ```) wherever they
// appear and trims surrounding whitespace. Applying it twice changes nothing.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Decode parses cleaned model text into a Result.
// Missing fields are left at their zero value. A numeric field that is present must
// hold a JSON number: null, strings and booleans are rejected, and day must be integral.
func Decode(text string) (*Result, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, &FormatError{Raw: text, Err: err}
		}
		return nil, &FormatError{Raw: text, Err: errNotObject}
	}

	var res Result
	if err := json.Unmarshal(trimmed, &res); err != nil {
		return nil, &FormatError{Raw: text, Err: err}
	}
	if err := checkNumbers(trimmed); err != nil {
		return nil, &FormatError{Raw: text, Err: err}
	}
	res.body = json.RawMessage(trimmed)
	return &res, nil
}

func checkNumbers(data []byte) error {
	var nf numericFields
	if err := json.Unmarshal(data, &nf); err != nil {
		return err
	}
	if err := requireNumber("total_estimated_cost", nf.TotalEstimatedCost); err != nil {
		return err
	}
	for k, v := range nf.BudgetBreakdown {
		if err := requireNumber("budget_breakdown."+k, v); err != nil {
			return err
		}
	}
	for i, d := range nf.Days {
		if err := requireNumber(fmt.Sprintf("itinerary[%d].estimated_cost", i), d.EstimatedCost); err != nil {
			return err
		}
		field := fmt.Sprintf("itinerary[%d].day", i)
		if err := requireNumber(field, d.Day); err != nil {
			return err
		}
		if len(d.Day) > 0 {
			f, _ := strconv.ParseFloat(string(d.Day), 64)
			if f != math.Trunc(f) {
				return fmt.Errorf("%s: %s is not a whole number", field, d.Day)
			}
		}
	}
	return nil
}

// requireNumber accepts an absent value or a JSON number token.
func requireNumber(field string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	if c := raw[0]; c == '-' || (c >= '0' && c <= '9') {
		return nil
	}
	return fmt.Errorf("%s: expected a number, got %s", field, raw)
}
