package models

import (
	"net/http"
	"time"
)

// Preset is a stored duration a countdown can start from.
type Preset struct {
	Index   int    `json:"index" yaml:"index"`
	Seconds int    `json:"seconds" yaml:"seconds"`
	Label   string `json:"label" yaml:"label"`
}

// CacheEntry is one stored response in a named cache bucket.
type CacheEntry struct {
	Bucket      string
	Path        string
	Status      int
	ContentType string
	Header      http.Header
	Body        []byte
	Digest      string // hex BLAKE2b-256 of Body
	StoredAt    time.Time
}
