// Package moderation executes block/unblock/ban/delete actions against the
// upstream API and reconciles the outcome into the view collections. Nothing
// is mutated speculatively: collections change only after the upstream call
// succeeds.
package moderation

import "context"

// Override is the session-local moderation verdict layered over the blocked
// flag the server declared. A single tagged value keeps force-block and
// force-unblock mutually exclusive.
type Override int

const (
	OverrideNone Override = iota
	OverrideBlock
	OverrideUnblock
)

// EffectiveBlocked collapses the server flag and the local override:
// (serverBlocked OR forced block) AND NOT forced unblock.
func EffectiveBlocked(serverBlocked bool, o Override) bool {
	if o == OverrideUnblock {
		return false
	}
	return serverBlocked || o == OverrideBlock
}

// ImageKey is the composite identity of one pet image.
func ImageKey(petID, url string) string {
	if petID == "" {
		petID = "unknown"
	}
	return petID + "::" + url
}

// OverrideStore persists per-session overrides between list fetches, until
// the upstream payload reflects the change on its own.
type OverrideStore interface {
	SetImageOverride(ctx context.Context, sid, key string, o Override) error
	ImageOverrides(ctx context.Context, sid string) (map[string]Override, error)
	SetPhotoOverride(ctx context.Context, sid, userID string, o Override) error
	PhotoOverrides(ctx context.Context, sid string) (map[string]Override, error)
}
