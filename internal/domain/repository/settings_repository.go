package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
)

// SettingsRepository defines the interface for per-seller settings operations.
type SettingsRepository interface {
	// Get returns the seller's setting for the key, or (nil, nil) when unset.
	Get(ctx context.Context, sellerID uuid.UUID, key string) (*entity.Setting, error)
	// Upsert creates the setting or overwrites its value if it already exists.
	Upsert(ctx context.Context, sellerID uuid.UUID, key, value string) (*entity.Setting, error)
}
