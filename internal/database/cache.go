package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/akyairhashvil/flashtimer/internal/models"
)

// PutCacheEntries stores entries in bucket inside one transaction, so either
// every entry lands or none does.
func (d *Database) PutCacheEntries(ctx context.Context, bucket string, entries []models.CacheEntry) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapCacheErr("begin", bucket, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cache_entries (bucket, path, status, content_type, headers, body, digest, stored_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(bucket, path) DO UPDATE SET
			status = excluded.status,
			content_type = excluded.content_type,
			headers = excluded.headers,
			body = excluded.body,
			digest = excluded.digest,
			stored_at = excluded.stored_at`)
	if err != nil {
		return wrapCacheErr("prepare", bucket, err)
	}
	defer stmt.Close()

	for _, e := range entries {
		header, err := json.Marshal(e.Header)
		if err != nil {
			return wrapCacheErr("encode headers", e.Path, err)
		}
		if _, err := stmt.ExecContext(ctx, bucket, e.Path, e.Status, nullableString(e.ContentType), string(header), e.Body, nullableString(e.Digest)); err != nil {
			return wrapCacheErr("put", e.Path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return wrapCacheErr("commit", bucket, err)
	}
	return nil
}

// GetCacheEntry returns the entry for path in bucket, or ErrNotFound.
func (d *Database) GetCacheEntry(ctx context.Context, bucket, path string) (models.CacheEntry, error) {
	e := models.CacheEntry{Bucket: bucket, Path: path}
	var contentType, header, digest sql.NullString
	err := d.DB.QueryRowContext(ctx, `
		SELECT status, content_type, headers, body, digest, stored_at
		FROM cache_entries
		WHERE bucket = ? AND path = ?`, bucket, path).
		Scan(&e.Status, &contentType, &header, &e.Body, &digest, &e.StoredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return e, wrapCacheErr("get", path, ErrNotFound)
	}
	if err != nil {
		return e, wrapCacheErr("get", path, err)
	}
	e.ContentType = contentType.String
	e.Digest = digest.String
	e.Header = http.Header{}
	if header.Valid && header.String != "" {
		if err := json.Unmarshal([]byte(header.String), &e.Header); err != nil {
			return e, wrapCacheErr("decode headers", path, err)
		}
	}
	return e, nil
}

// CountCacheEntries reports how many entries bucket holds.
func (d *Database) CountCacheEntries(ctx context.Context, bucket string) (int, error) {
	var n int
	if err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache_entries WHERE bucket = ?", bucket).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return n, nil
}
