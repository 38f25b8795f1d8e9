package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/auth"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestSessionRoundTrip(t *testing.T) {
	repo := NewSessionRepo(newTestClient(t))
	ctx := context.Background()

	record := auth.SessionRecord{
		SID:       "s1",
		Email:     "admin@gmail.com",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Email != record.Email || !got.ExpiresAt.Equal(record.ExpiresAt) {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestSessionNotFound(t *testing.T) {
	repo := NewSessionRepo(newTestClient(t))
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionDelete(t *testing.T) {
	repo := NewSessionRepo(newTestClient(t))
	ctx := context.Background()

	record := auth.SessionRecord{SID: "s1", Email: "admin@gmail.com", ExpiresAt: time.Now().Add(time.Hour)}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionCreateRejectsEmptyFields(t *testing.T) {
	repo := NewSessionRepo(newTestClient(t))
	err := repo.Create(context.Background(), auth.SessionRecord{SID: "", Email: "x"})
	if !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
