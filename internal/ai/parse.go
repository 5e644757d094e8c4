// README: Model output normalizer; strips code fences, parses JSON, validates plan structure.
package ai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tripper/internal/apperr"
	"tripper/internal/types"
)

// cleanJSON removes markdown code fences if present (e.g. ```json ... ```).
func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// ParsePlan turns raw model text into a validated TripPlan.
//
// The model may answer with {"error": "..."} instead of a plan; that is
// surfaced as a validation error, keeping the model's own text as the
// user-facing message when it concerns the location.
func ParsePlan(content string) (*types.TripPlan, error) {
	clean := cleanJSON(content)

	var probe struct {
		Error    string          `json:"error"`
		Location json.RawMessage `json:"location"`
	}
	if err := json.Unmarshal([]byte(clean), &probe); err != nil {
		return nil, apperr.Wrap(err, apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			fmt.Sprintf("failed to parse JSON: %v (content: %s)", err, truncate(clean, 200)),
			http.StatusInternalServerError)
	}

	if probe.Error != "" {
		lower := strings.ToLower(probe.Error)
		if strings.Contains(lower, "location") || strings.Contains(lower, "valid") || strings.Contains(lower, "vague") {
			return nil, apperr.New(apperr.KindValidation, probe.Error,
				fmt.Sprintf("model returned location error: %s", probe.Error), http.StatusBadRequest)
		}
		return nil, apperr.New(apperr.KindValidation, probe.Error,
			fmt.Sprintf("model returned error: %s", probe.Error), http.StatusBadRequest)
	}

	var plan types.TripPlan
	if err := json.Unmarshal([]byte(clean), &plan); err != nil {
		return nil, apperr.Wrap(err, apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			fmt.Sprintf("failed to decode plan: %v", err), http.StatusInternalServerError)
	}

	if plan.TripName == "" {
		return nil, badPlan("response missing tripName field", clean)
	}
	if plan.Location.Name == "" || !hasCoordinates(probe.Location) {
		return nil, badPlan("response missing or invalid location field", clean)
	}
	if len(plan.Days) == 0 {
		return nil, badPlan("response missing or empty days array", clean)
	}
	if err := validateDays(plan.Days); err != nil {
		return nil, err
	}

	return &plan, nil
}

// validateDays checks the nested structure the model is not trusted on:
// parseable dates, non-empty activity lists, known enum values, HH:MM times,
// and a reason for every flagged hidden gem. Missing activity ids are filled
// in rather than rejected.
func validateDays(days []types.DayPlan) error {
	for di := range days {
		day := &days[di]
		if _, err := time.Parse("2006-01-02", day.Date); err != nil {
			return badPlan(fmt.Sprintf("day %d has unparseable date %q", di+1, day.Date), "")
		}
		if len(day.Activities) == 0 {
			return badPlan(fmt.Sprintf("day %s has no activities", day.Date), "")
		}
		seen := make(map[string]bool, len(day.Activities))
		for j := range day.Activities {
			act := &day.Activities[j]
			if act.ID == "" || seen[act.ID] {
				act.ID = fmt.Sprintf("%s-%d", day.Date, j+1)
			}
			seen[act.ID] = true
			if act.Name == "" {
				return badPlan(fmt.Sprintf("day %s activity %d missing name", day.Date, j+1), "")
			}
			if !types.ValidActivityType(string(act.Type)) {
				return badPlan(fmt.Sprintf("activity %q has unknown type %q", act.Name, act.Type), "")
			}
			if !types.ValidPriceRange(string(act.PriceRange)) {
				return badPlan(fmt.Sprintf("activity %q has unknown price range %q", act.Name, act.PriceRange), "")
			}
			if _, err := time.Parse("15:04", act.Time); err != nil {
				return badPlan(fmt.Sprintf("activity %q has unparseable time %q", act.Name, act.Time), "")
			}
			if act.IsHiddenGem && act.HiddenGemReason == "" {
				return badPlan(fmt.Sprintf("hidden gem %q has no reason", act.Name), "")
			}
		}
	}
	return nil
}

// hasCoordinates reports whether the raw location object carries a
// coordinates key at all; a zero lat/lng pair from the decoder is
// indistinguishable from an absent one.
func hasCoordinates(rawLocation json.RawMessage) bool {
	if len(rawLocation) == 0 {
		return false
	}
	var loc struct {
		Coordinates *types.Coordinates `json:"coordinates"`
	}
	if err := json.Unmarshal(rawLocation, &loc); err != nil {
		return false
	}
	return loc.Coordinates != nil
}

func badPlan(detail, content string) *apperr.Error {
	if content != "" {
		detail = fmt.Sprintf("%s (content: %s)", detail, truncate(content, 200))
	}
	return apperr.New(apperr.KindBadModelOutput, apperr.MsgBadModelOutput, detail, http.StatusInternalServerError)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
