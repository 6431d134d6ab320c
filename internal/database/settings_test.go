package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "missing"); ok {
		t.Fatalf("expected missing key to report false")
	}
	if err := db.SetSetting(ctx, "customTimers", "[10,20]"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "customTimers", "[30]"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	v, ok := db.GetSetting(ctx, "customTimers")
	if !ok || v != "[30]" {
		t.Fatalf("expected upserted value, got %q %v", v, ok)
	}
	if err := db.DeleteSetting(ctx, "customTimers"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if _, ok := db.GetSetting(ctx, "customTimers"); ok {
		t.Fatalf("expected deleted key to report false")
	}
	if err := db.DeleteSetting(ctx, "customTimers"); err != nil {
		t.Fatalf("DeleteSetting on missing key failed: %v", err)
	}
}

func TestGetSettingNullValue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES ('nil', NULL)"); err != nil {
		t.Fatalf("insert null failed: %v", err)
	}
	if _, ok := db.GetSetting(ctx, "nil"); ok {
		t.Fatalf("expected NULL value to report false")
	}
}

func TestConcurrentSettingWrites(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := db.SetSetting(ctx, "customTimers", fmt.Sprintf("[%d]", i+1)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent write failed: %v", err)
	}
	if _, ok := db.GetSetting(ctx, "customTimers"); !ok {
		t.Fatalf("expected a value after concurrent writes")
	}
}

func TestLookupSettingSeparatesMissingFromFailedRead(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SetSetting(ctx, "customTimers", "[10,20]"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	if _, ok, err := db.LookupSetting(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected missing key without error, got ok=%v err=%v", ok, err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, ok, err := db.LookupSetting(cancelled, "customTimers")
	if ok || err == nil {
		t.Fatalf("expected read error on cancelled context, got ok=%v err=%v", ok, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var op *OpError
	if !errors.As(err, &op) || op.Op != "get" {
		t.Fatalf("expected get OpError, got %T", err)
	}

	if v, ok, err := db.LookupSetting(ctx, "customTimers"); err != nil || !ok || v != "[10,20]" {
		t.Fatalf("expected stored value, got %q %v %v", v, ok, err)
	}
}
