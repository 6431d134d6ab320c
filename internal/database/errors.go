package database

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
	ErrNotFound          = errors.New("not found")
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSettingErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Key: key, Err: err}
}

func wrapCacheErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "cache entry", Key: key, Err: err}
}

func isNotADatabase(err error) bool {
	return err != nil && strings.Contains(err.Error(), "file is not a database")
}
