package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fantasymotogp/fantasy-data/internal/config"
	"github.com/fantasymotogp/fantasy-data/internal/metrics"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Service is the aggregate facade: it builds each dataset facade on first
// access and keeps it for the rest of the process lifetime. Only successful
// builds are memoized, so a transient feed failure is retried on the next
// access instead of pinning the error. Invalidation requires a process
// restart; a new calendar day only changes what the snapshot store does on
// the next *un*built dataset's first access.
type Service struct {
	cfg    *config.Config
	store  Getter
	logger *slog.Logger

	mu            sync.Mutex
	riders        *Riders
	constructors  *Constructors
	teams         *Teams
	weekends      *Weekends
	riderFullData *table.Table
}

// NewService creates the aggregate facade. Nothing is fetched until a
// dataset is first asked for.
func NewService(cfg *config.Config, store Getter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, store: store, logger: logger}
}

// Riders returns the riders facade, building it on first access.
func (s *Service) Riders(ctx context.Context) (*Riders, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.riders != nil {
		return s.riders, nil
	}
	d, err := NewRiders(ctx, s.store, s.cfg.RidersURL)
	if err != nil {
		metrics.DatasetBuildFailures.WithLabelValues(config.DatasetRiders).Inc()
		return nil, err
	}
	s.logger.Info("Dataset built", "dataset", config.DatasetRiders, "records", len(d.records))
	s.riders = d
	return d, nil
}

// Constructors returns the constructors facade, building it on first access.
func (s *Service) Constructors(ctx context.Context) (*Constructors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.constructorsLocked(ctx)
}

// Teams returns the teams facade, building it on first access.
func (s *Service) Teams(ctx context.Context) (*Teams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamsLocked(ctx)
}

// Weekends returns the weekends facade, building it on first access.
func (s *Service) Weekends(ctx context.Context) (*Weekends, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.weekends != nil {
		return s.weekends, nil
	}
	d, err := NewWeekends(ctx, s.store, s.cfg.EventsURL)
	if err != nil {
		metrics.DatasetBuildFailures.WithLabelValues(config.DatasetWeekends).Inc()
		return nil, err
	}
	s.logger.Info("Dataset built", "dataset", config.DatasetWeekends, "records", len(d.records))
	s.weekends = d
	return d, nil
}

// RiderFullData is the riders all_data view with constructor and team names
// attached by id (and the now-redundant id columns dropped). It needs all
// three entity facades, so a failure in any of their feeds fails this view.
func (s *Service) RiderFullData(ctx context.Context) (*table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.riderFullData != nil {
		return s.riderFullData, nil
	}

	riders := s.riders
	if riders == nil {
		var err error
		if riders, err = NewRiders(ctx, s.store, s.cfg.RidersURL); err != nil {
			metrics.DatasetBuildFailures.WithLabelValues(config.DatasetRiders).Inc()
			return nil, err
		}
		s.riders = riders
	}
	constructors, err := s.constructorsLocked(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamsLocked(ctx)
	if err != nil {
		return nil, err
	}

	full := riders.AllData().Clone()
	full.Columns = append(full.Columns, "constructor", "team")
	for i := range full.Rows {
		cells := full.Rows[i].Cells
		if cid, ok := asID(cells["constructor_id"]); ok {
			if row, found := constructors.Info().RowByID(cid); found {
				cells["constructor"] = row.Cells["Name"]
			}
		}
		if tid, ok := asID(cells["team_id"]); ok {
			if row, found := teams.Info().RowByID(tid); found {
				cells["team"] = row.Cells["Name"]
			}
		}
	}
	full.Drop("constructor_id", "squad_id", "team_id")

	s.riderFullData = full
	return full, nil
}

func (s *Service) constructorsLocked(ctx context.Context) (*Constructors, error) {
	if s.constructors != nil {
		return s.constructors, nil
	}
	d, err := NewConstructors(ctx, s.store, s.cfg.ConstructorsURL)
	if err != nil {
		metrics.DatasetBuildFailures.WithLabelValues(config.DatasetConstructors).Inc()
		return nil, err
	}
	s.logger.Info("Dataset built", "dataset", config.DatasetConstructors, "records", len(d.records))
	s.constructors = d
	return d, nil
}

func (s *Service) teamsLocked(ctx context.Context) (*Teams, error) {
	if s.teams != nil {
		return s.teams, nil
	}
	d, err := NewTeams(ctx, s.store, s.cfg.SquadsURL)
	if err != nil {
		metrics.DatasetBuildFailures.WithLabelValues(config.DatasetTeams).Inc()
		return nil, err
	}
	s.logger.Info("Dataset built", "dataset", config.DatasetTeams, "records", len(d.records))
	s.teams = d
	return d, nil
}

// viewer is the facade surface the API routes go through.
type viewer interface {
	View(name string) (*table.Table, bool)
}

// ViewFor resolves a dataset facade and one of its views by route names
// ("riders", "constructors", "teams", "weekends").
func (s *Service) ViewFor(ctx context.Context, dataset, view string) (*table.Table, error) {
	var (
		d   viewer
		err error
	)
	switch dataset {
	case "riders":
		d, err = s.Riders(ctx)
	case "constructors":
		d, err = s.Constructors(ctx)
	case "teams":
		d, err = s.Teams(ctx)
	case "weekends":
		d, err = s.Weekends(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, dataset)
	}
	if err != nil {
		return nil, err
	}
	t, ok := d.View(view)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownView, dataset, view)
	}
	return t, nil
}

func asID(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
