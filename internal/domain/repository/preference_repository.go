package repository

import "context"

// PreferenceRepository is the injected storage abstraction for persisted UI
// preferences. Exactly one key (the active navigation tab) is stored today;
// the interface stays a plain get/set so tests can swap in a memory map.
type PreferenceRepository interface {
	Get(ctx context.Context, adminID, key string) (string, error)
	Set(ctx context.Context, adminID, key, value string) error
}
