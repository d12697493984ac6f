package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, dataset, url string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func newTestStore(t *testing.T, fetcher Fetcher) *Store {
	t.Helper()
	s := New(t.TempDir(), fetcher, nil)
	s.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestStoreFetchesOncePerDay(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{body: []byte(`[{"id":1}]`)}
	s := newTestStore(t, fetcher)
	ctx := context.Background()

	first, err := s.Get(ctx, "http://feed/riders", "rider")
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	second, err := s.Get(ctx, "http://feed/riders", "rider")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
	if string(first) != string(second) {
		t.Error("cache hit returned a different payload")
	}
}

func TestStoreFileLayout(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{body: []byte(`[]`)}
	s := newTestStore(t, fetcher)

	if _, err := s.Get(context.Background(), "http://feed/teams", "team"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	path := filepath.Join(s.dir, "team", "20260828.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot file missing at %s: %v", path, err)
	}
	// The payload is stored verbatim.
	if string(data) != `[]` {
		t.Errorf("stored %q, want %q", data, `[]`)
	}
}

func TestStoreRefetchesCorruptSnapshot(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{body: []byte(`[{"id":2}]`)}
	s := newTestStore(t, fetcher)

	path := s.path("rider")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"truncated`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(context.Background(), "http://feed/riders", "rider")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
	if string(got) != `[{"id":2}]` {
		t.Errorf("got %q, want refetched payload", got)
	}

	// The corrupt file is overwritten with the fresh payload.
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != `[{"id":2}]` {
		t.Errorf("on disk %q, want refetched payload", onDisk)
	}
}

func TestStoreRejectsNonJSONBody(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{body: []byte(`<html>maintenance</html>`)}
	s := newTestStore(t, fetcher)

	if _, err := s.Get(context.Background(), "http://feed/riders", "rider"); err == nil {
		t.Fatal("expected an error for a non-JSON body")
	}
	// Nothing is written on failure.
	if _, err := os.Stat(s.path("rider")); !os.IsNotExist(err) {
		t.Error("failed fetch should not leave a snapshot file")
	}
}

func TestStorePropagatesFetchError(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: fmt.Errorf("connection refused")}
	s := newTestStore(t, fetcher)

	if _, err := s.Get(context.Background(), "http://feed/riders", "rider"); err == nil {
		t.Fatal("expected the fetch error to propagate")
	}
}

func TestStoreStats(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), &fakeFetcher{}, nil)
	for _, f := range []string{"rider/20260826.json", "rider/20260827.json", "team/20260827.json", "rider/notes.txt"} {
		path := filepath.Join(s.dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	stats := s.Stats()
	if stats["rider"] != 2 {
		t.Errorf("rider count = %d, want 2", stats["rider"])
	}
	if stats["team"] != 1 {
		t.Errorf("team count = %d, want 1", stats["team"])
	}
}
