package util

import "testing"

func TestDigestStable(t *testing.T) {
	a := Digest([]byte("timer"))
	b := Digest([]byte("timer"))
	if a != b {
		t.Fatalf("expected stable digest")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == Digest([]byte("timer!")) {
		t.Fatalf("expected different input to change digest")
	}
}

func TestETag(t *testing.T) {
	d := Digest(nil)
	tag := ETag(d)
	if tag != `"`+d[:32]+`"` {
		t.Fatalf("unexpected etag %s", tag)
	}
	if ETag("abc") != `"abc"` {
		t.Fatalf("short digest should be kept whole")
	}
}
