// README: Planner service: validate, prompt, one model call, normalize, optional coordinate backfill.
package planner

import (
	"context"

	"tripper/internal/ai"
	"tripper/internal/logger"
	"tripper/internal/types"
)

// Geocoder resolves a free-text location to coordinates. Optional.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (types.Coordinates, error)
}

type Service struct {
	provider ai.Provider
	geocoder Geocoder // nil when MAPS_API_KEY is not configured
}

func NewService(provider ai.Provider, geocoder Geocoder) *Service {
	return &Service{provider: provider, geocoder: geocoder}
}

// Generate runs one request through the whole pipeline. Exactly one outbound
// model call; validation failures return before anything leaves the process.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*types.TripPlan, error) {
	req, err := ValidateRequest(in)
	if err != nil {
		return nil, err
	}

	content, err := s.provider.Complete(ctx, ai.BuildSystemPrompt(), ai.BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	plan, err := ai.ParsePlan(content)
	if err != nil {
		return nil, err
	}

	// Models occasionally return 0,0 for places they cannot place. Backfill
	// from the geocoder when available; failure here never fails the plan.
	if s.geocoder != nil && plan.Location.Coordinates == (types.Coordinates{}) {
		coords, gerr := s.geocoder.Geocode(ctx, plan.Location.Name)
		if gerr != nil {
			logger.Get().Warnw("geocode backfill failed", "location", plan.Location.Name, "error", gerr)
		} else {
			plan.Location.Coordinates = coords
		}
	}

	return plan, nil
}
