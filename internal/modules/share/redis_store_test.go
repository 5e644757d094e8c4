// README: Redis backend tests using redismock.
package share

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestRedisBackend_SetWithTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	backend := NewRedisBackend(client)

	payload := []byte(`{"id":"abc"}`)
	mock.ExpectSet("trip:abc", payload, TTL).SetVal("OK")

	if err := backend.Set(context.Background(), "trip:abc", payload, TTL); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRedisBackend_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	backend := NewRedisBackend(client)

	mock.ExpectGet("trip:abc").SetVal(`{"id":"abc"}`)

	v, err := backend.Get(context.Background(), "trip:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(v) != `{"id":"abc"}` {
		t.Errorf("value = %q", v)
	}
}

func TestRedisBackend_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	backend := NewRedisBackend(client)

	mock.ExpectGet("trip:missing").RedisNil()

	if _, err := backend.Get(context.Background(), "trip:missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisBackend_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	backend := NewRedisBackend(client)

	mock.ExpectGet("trip:abc").SetErr(errors.New("connection refused"))

	_, err := backend.Get(context.Background(), "trip:abc")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("backend error must not read as not-found, got %v", err)
	}
}

func TestRedisBackend_Del(t *testing.T) {
	client, mock := redismock.NewClientMock()
	backend := NewRedisBackend(client)

	mock.ExpectDel("trip:abc").SetVal(1)

	if err := backend.Del(context.Background(), "trip:abc"); err != nil {
		t.Fatalf("Del: %v", err)
	}
}
