// README: Google Maps geocoder used to backfill plan coordinates the model omitted.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripper/internal/types"
)

// GeocodeService handles interactions with the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode resolves a free-text location to coordinates.
func (s *GeocodeService) Geocode(ctx context.Context, location string) (types.Coordinates, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return types.Coordinates{}, fmt.Errorf("no geocoding result for %q", location)
	}
	loc := results[0].Geometry.Location
	return types.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
