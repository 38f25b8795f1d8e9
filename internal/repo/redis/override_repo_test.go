package redis

import (
	"context"
	"testing"
	"time"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/moderation"
)

func TestOverrideRoundTrip(t *testing.T) {
	repo := NewOverrideRepo(newTestClient(t), time.Hour)
	ctx := context.Background()

	if err := repo.SetImageOverride(ctx, "s1", "p1::http://x/a.jpg", moderation.OverrideBlock); err != nil {
		t.Fatalf("SetImageOverride: %v", err)
	}
	if err := repo.SetImageOverride(ctx, "s1", "p1::http://x/b.jpg", moderation.OverrideUnblock); err != nil {
		t.Fatalf("SetImageOverride: %v", err)
	}
	if err := repo.SetPhotoOverride(ctx, "s1", "u1", moderation.OverrideBlock); err != nil {
		t.Fatalf("SetPhotoOverride: %v", err)
	}

	images, err := repo.ImageOverrides(ctx, "s1")
	if err != nil {
		t.Fatalf("ImageOverrides: %v", err)
	}
	if images["p1::http://x/a.jpg"] != moderation.OverrideBlock {
		t.Fatalf("unexpected image overrides: %+v", images)
	}
	if images["p1::http://x/b.jpg"] != moderation.OverrideUnblock {
		t.Fatalf("unexpected image overrides: %+v", images)
	}

	photos, err := repo.PhotoOverrides(ctx, "s1")
	if err != nil {
		t.Fatalf("PhotoOverrides: %v", err)
	}
	if photos["u1"] != moderation.OverrideBlock {
		t.Fatalf("unexpected photo overrides: %+v", photos)
	}
}

func TestOverridesAreScopedPerSession(t *testing.T) {
	repo := NewOverrideRepo(newTestClient(t), time.Hour)
	ctx := context.Background()

	if err := repo.SetImageOverride(ctx, "s1", "k", moderation.OverrideBlock); err != nil {
		t.Fatalf("SetImageOverride: %v", err)
	}

	other, err := repo.ImageOverrides(ctx, "s2")
	if err != nil {
		t.Fatalf("ImageOverrides: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("overrides leaked across sessions: %+v", other)
	}
}

func TestOverrideSwitchReplacesValue(t *testing.T) {
	repo := NewOverrideRepo(newTestClient(t), time.Hour)
	ctx := context.Background()

	if err := repo.SetImageOverride(ctx, "s1", "k", moderation.OverrideBlock); err != nil {
		t.Fatalf("SetImageOverride: %v", err)
	}
	if err := repo.SetImageOverride(ctx, "s1", "k", moderation.OverrideUnblock); err != nil {
		t.Fatalf("SetImageOverride: %v", err)
	}

	images, err := repo.ImageOverrides(ctx, "s1")
	if err != nil {
		t.Fatalf("ImageOverrides: %v", err)
	}
	if len(images) != 1 || images["k"] != moderation.OverrideUnblock {
		t.Fatalf("override must replace, not accumulate: %+v", images)
	}
}

func TestOverrideNoneClearsEntry(t *testing.T) {
	repo := NewOverrideRepo(newTestClient(t), time.Hour)
	ctx := context.Background()

	if err := repo.SetPhotoOverride(ctx, "s1", "u1", moderation.OverrideBlock); err != nil {
		t.Fatalf("SetPhotoOverride: %v", err)
	}
	if err := repo.SetPhotoOverride(ctx, "s1", "u1", moderation.OverrideNone); err != nil {
		t.Fatalf("SetPhotoOverride: %v", err)
	}

	photos, err := repo.PhotoOverrides(ctx, "s1")
	if err != nil {
		t.Fatalf("PhotoOverrides: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("none must clear the entry: %+v", photos)
	}
}
