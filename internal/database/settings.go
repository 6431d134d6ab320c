package database

import (
	"context"
	"database/sql"
	"errors"
)

// LookupSetting returns the stored value for key. A missing key or a NULL
// value reports false with a nil error; only a failed read returns an error.
func (d *Database) LookupSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapSettingErr("get", key, err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// GetSetting is LookupSetting for callers that treat a failed read like a
// missing key.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, ok, err := d.LookupSetting(ctx, key)
	if err != nil {
		return "", false
	}
	return value, ok
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

// DeleteSetting removes key. Deleting a missing key is not an error.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete", key, err)
}
