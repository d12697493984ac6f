package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fantasymotogp/fantasy-data/internal/metrics"
)

const dateLayout = "20060102"

// Fetcher fetches one dataset's raw feed body. Satisfied by *Client.
type Fetcher interface {
	Fetch(ctx context.Context, dataset, url string) ([]byte, error)
}

// Store caches one feed payload per dataset per calendar day on disk.
// Files accumulate indefinitely; pruning is left to the operator.
type Store struct {
	dir     string
	fetcher Fetcher
	logger  *slog.Logger

	now func() time.Time // overridable in tests
}

// New creates a snapshot store rooted at dir.
func New(dir string, fetcher Fetcher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:     dir,
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns today's raw JSON payload for a dataset, fetching from the
// endpoint only if no snapshot exists for the current calendar date. The
// payload is stored verbatim. A stored file that no longer parses as JSON is
// treated as a cache miss and refetched rather than surfaced as an error.
func (s *Store) Get(ctx context.Context, endpoint, dataset string) (json.RawMessage, error) {
	path := s.path(dataset)

	if data, err := os.ReadFile(path); err == nil {
		if json.Valid(data) {
			metrics.SnapshotCacheHits.WithLabelValues(dataset).Inc()
			s.logger.Info("Using snapshot from disk", "dataset", dataset, "path", path)
			return data, nil
		}
		metrics.SnapshotCorruptRefetches.WithLabelValues(dataset).Inc()
		s.logger.Warn("Snapshot on disk is not valid JSON, refetching", "dataset", dataset, "path", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	metrics.SnapshotCacheMisses.WithLabelValues(dataset).Inc()
	s.logger.Info("Fetching snapshot from website", "dataset", dataset)

	body, err := s.fetcher.Fetch(ctx, dataset, endpoint)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s feed returned non-JSON body", dataset)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, fmt.Errorf("write snapshot %s: %w", path, err)
	}

	return body, nil
}

// Stats reports how many snapshot files each dataset has accumulated.
func (s *Store) Stats() map[string]int {
	stats := make(map[string]int)
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return stats
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		count := 0
		for _, f := range files {
			if filepath.Ext(f.Name()) == ".json" {
				count++
			}
		}
		stats[entry.Name()] = count
	}
	return stats
}

func (s *Store) path(dataset string) string {
	datestr := s.now().Format(dateLayout)
	return filepath.Join(s.dir, dataset, datestr+".json")
}
