package database

import (
	"context"

	"github.com/akyairhashvil/flashtimer/internal/models"
)

// SettingsRepository defines key-value operations.
type SettingsRepository interface {
	LookupSetting(ctx context.Context, key string) (string, bool, error)
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// CacheRepository defines cache bucket operations.
type CacheRepository interface {
	PutCacheEntries(ctx context.Context, bucket string, entries []models.CacheEntry) error
	GetCacheEntry(ctx context.Context, bucket, path string) (models.CacheEntry, error)
	CountCacheEntries(ctx context.Context, bucket string) (int, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	CacheRepository
}

var _ Repository = (*Database)(nil)
