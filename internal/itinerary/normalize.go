package itinerary

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize turns an untyped form body into a Request.
// It never fails: missing or malformed fields fall back to their defaults.
func Normalize(raw map[string]any) Request {
	days := DefaultDays
	if n, ok := toNumber(raw["duration"]); ok && n >= 1 && n <= math.MaxInt32 {
		days = int(n)
	}

	budget := float64(days * DefaultDailyBudgetUSD)
	if n, ok := toNumber(raw["budget"]); ok && n > 0 {
		budget = n
	}

	prefs := DefaultPreferences
	if v := raw["preferences"]; !falsy(v) {
		prefs = toText(v)
	}

	return Request{
		Origin:      toText(raw["origin"]),
		Destination: toText(raw["destination"]),
		StartDate:   toText(raw["startDate"]),
		Days:        days,
		BudgetUSD:   budget,
		Interests:   toInterests(raw["interests"]),
		Preferences: prefs,
	}
}

// toNumber accepts JSON numbers and numeric strings. NaN and ±Inf are rejected.
func toNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// falsy reports whether v carries no usable value: null, false, zero or empty text.
func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	}
	if n, ok := toNumber(v); ok {
		return n == 0
	}
	return toText(v) == ""
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// toInterests keeps list order and drops blank tags. A scalar string is split on commas.
func toInterests(v any) []string {
	var parts []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			parts = append(parts, toText(item))
		}
	case []string:
		parts = t
	case string:
		parts = strings.Split(t, ",")
	default:
		return nil
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
