// README: Planner service tests covering the generate pipeline and coordinate backfill.
package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tripper/internal/types"
)

type stubProvider struct {
	content string
	calls   int
}

func (s *stubProvider) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.content, nil
}

type stubGeocoder struct {
	coords types.Coordinates
	err    error
	calls  int
	asked  string
}

func (s *stubGeocoder) Geocode(_ context.Context, location string) (types.Coordinates, error) {
	s.calls++
	s.asked = location
	return s.coords, s.err
}

// planJSON builds a minimal valid model answer with the given location coordinates.
func planJSON(lat, lng float64) string {
	return fmt.Sprintf(`{
	  "tripName": "Kyoto Day",
	  "location": {"name": "Kyoto, Japan", "coordinates": {"lat": %g, "lng": %g}},
	  "days": [{"date": "2025-04-01", "activities": [
	    {"id": "a1", "time": "09:00", "name": "Fushimi Inari", "type": "attraction",
	     "description": "d", "coordinates": {"lat": 34.97, "lng": 135.77},
	     "priceRange": "$", "isHiddenGem": false}
	  ]}],
	  "budgetBreakdown": {"estimated": 300, "currency": "JPY", "withinBudget": true},
	  "tips": ["Go early"]
	}`, lat, lng)
}

func TestGenerate_GeocodeBackfillsZeroCoordinates(t *testing.T) {
	geo := &stubGeocoder{coords: types.Coordinates{Lat: 35.0116, Lng: 135.7681}}
	svc := NewService(&stubProvider{content: planJSON(0, 0)}, geo)

	plan, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if geo.calls != 1 {
		t.Fatalf("geocoder calls = %d, want 1", geo.calls)
	}
	if geo.asked != "Kyoto, Japan" {
		t.Errorf("geocoded location = %q", geo.asked)
	}
	if plan.Location.Coordinates != geo.coords {
		t.Errorf("coordinates = %+v, want %+v", plan.Location.Coordinates, geo.coords)
	}
}

func TestGenerate_GeocodeSkippedWhenModelProvidesCoordinates(t *testing.T) {
	geo := &stubGeocoder{coords: types.Coordinates{Lat: 1, Lng: 1}}
	svc := NewService(&stubProvider{content: planJSON(35.01, 35.01)}, geo)

	plan, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if geo.calls != 0 {
		t.Errorf("geocoder calls = %d, want 0", geo.calls)
	}
	if plan.Location.Coordinates == (types.Coordinates{}) {
		t.Error("model coordinates were discarded")
	}
}

func TestGenerate_GeocodeFailureKeepsPlan(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("quota exceeded")}
	svc := NewService(&stubProvider{content: planJSON(0, 0)}, geo)

	plan, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Generate failed on geocode error: %v", err)
	}
	if plan.TripName != "Kyoto Day" {
		t.Errorf("tripName = %q", plan.TripName)
	}
	// Coordinates stay zeroed when the backfill cannot resolve them.
	if plan.Location.Coordinates != (types.Coordinates{}) {
		t.Errorf("coordinates = %+v, want zero", plan.Location.Coordinates)
	}
}

func TestGenerate_NilGeocoder(t *testing.T) {
	svc := NewService(&stubProvider{content: planJSON(0, 0)}, nil)

	plan, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Location.Coordinates != (types.Coordinates{}) {
		t.Errorf("coordinates = %+v, want zero with no geocoder", plan.Location.Coordinates)
	}
}
