// README: Share service: mint ids, persist shared trips with a 30-day expiry, lazy-evict on read.
package share

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripper/internal/logger"
	"tripper/internal/types"
)

// Service wraps a Backend with the share-trip record lifecycle. A record is
// absent, present-unexpired, or present-expired-and-about-to-be-purged;
// nothing in between.
type Service struct {
	backend Backend
	baseURL string
	now     func() time.Time
}

func NewService(backend Backend, baseURL string) *Service {
	return &Service{
		backend: backend,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

// Share persists plan+formInput under a fresh id and returns it. Sharing the
// same plan twice mints two ids; records are never mutated after creation.
func (s *Service) Share(ctx context.Context, plan types.TripPlan, formInput types.TripRequest) (string, error) {
	id := newID()
	now := s.now().UTC()

	trip := types.SharedTrip{
		ID:        id,
		Plan:      plan,
		FormInput: formInput,
		CreatedAt: now.Format(time.RFC3339),
		ExpiresAt: now.Add(TTL).Format(time.RFC3339),
	}

	payload, err := json.Marshal(trip)
	if err != nil {
		return "", fmt.Errorf("marshal shared trip: %w", err)
	}

	if err := s.backend.Set(ctx, keyPrefix+id, payload, TTL); err != nil {
		logger.Get().Errorw("share store write failed", "id", id, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return id, nil
}

// Get returns the shared trip for id. An expired record is deleted and
// reported as not found. Backend read errors degrade to not found: the read
// path trades correctness for availability.
func (s *Service) Get(ctx context.Context, id string) (*types.SharedTrip, error) {
	trip, expired, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if expired {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return trip, nil
}

// Exists reports whether id resolves to an unexpired record. Expired-but-
// unpurged records count as absent, matching Get; the purge itself is left
// to the next Get.
func (s *Service) Exists(ctx context.Context, id string) bool {
	_, expired, err := s.load(ctx, id)
	return err == nil && !expired
}

// Delete removes the record unconditionally and reports success.
func (s *Service) Delete(ctx context.Context, id string) bool {
	if err := s.backend.Del(ctx, keyPrefix+id); err != nil {
		logger.Get().Errorw("share store delete failed", "id", id, "error", err)
		return false
	}
	return true
}

// ShareURL is the public link for a share id.
func (s *Service) ShareURL(id string) string {
	return fmt.Sprintf("%s/trip/%s", s.baseURL, id)
}

func (s *Service) load(ctx context.Context, id string) (*types.SharedTrip, bool, error) {
	payload, err := s.backend.Get(ctx, keyPrefix+id)
	if err != nil {
		if err != ErrNotFound {
			logger.Get().Warnw("share store read failed", "id", id, "error", err)
		}
		return nil, false, ErrNotFound
	}

	var trip types.SharedTrip
	if err := json.Unmarshal(payload, &trip); err != nil {
		logger.Get().Errorw("share record corrupt", "id", id, "error", err)
		return nil, false, ErrNotFound
	}

	expiresAt, err := time.Parse(time.RFC3339, trip.ExpiresAt)
	if err != nil {
		logger.Get().Errorw("share record has bad expiry", "id", id, "expiresAt", trip.ExpiresAt)
		return nil, false, ErrNotFound
	}
	return &trip, expiresAt.Before(s.now()), nil
}

func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
