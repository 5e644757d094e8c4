// README: Trip request validation; no side effects, nothing leaves the process on failure.
package planner

import (
	"fmt"
	"strings"
	"time"

	"tripper/internal/apperr"
	"tripper/internal/types"
)

// GenerateInput is the raw form submission before validation.
type GenerateInput struct {
	Location    string  `json:"location"`
	TripType    string  `json:"tripType"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Preferences string  `json:"preferences"`
}

const dateLayout = "2006-01-02"

// ValidateRequest normalizes raw input into a TripRequest or fails with a
// validation error. Required fields first, then enum, dates, budget.
func ValidateRequest(in GenerateInput) (types.TripRequest, error) {
	var zero types.TripRequest

	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" || in.TripType == "" || in.StartDate == "" || in.EndDate == "" || in.Budget == 0 {
		return zero, apperr.ValidationFailed(apperr.MsgValidation, "missing required trip fields")
	}

	if !types.ValidTripType(in.TripType) {
		return zero, apperr.ValidationFailed("Invalid trip type",
			fmt.Sprintf("tripType %q is not one of date|holiday|friends", in.TripType))
	}

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return zero, apperr.ValidationFailed("Invalid date range",
			fmt.Sprintf("startDate %q does not parse: %v", in.StartDate, err))
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return zero, apperr.ValidationFailed("Invalid date range",
			fmt.Sprintf("endDate %q does not parse: %v", in.EndDate, err))
	}
	if end.Before(start) {
		return zero, apperr.ValidationFailed("Invalid date range",
			fmt.Sprintf("endDate %s precedes startDate %s", in.EndDate, in.StartDate))
	}

	if in.Budget <= 0 {
		return zero, apperr.ValidationFailed("Invalid budget",
			fmt.Sprintf("budget %g is not positive", in.Budget))
	}

	return types.TripRequest{
		Location:    in.Location,
		TripType:    types.TripType(in.TripType),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Preferences: strings.TrimSpace(in.Preferences),
	}, nil
}
