package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fantasymotogp/fantasy-data/internal/config"
	"github.com/fantasymotogp/fantasy-data/internal/dataset"
)

// fakeStore backs the service with canned payloads and reports snapshot
// counts, standing in for *snapshot.Store on both interfaces.
type fakeStore struct {
	payloads map[string]string
	fail     map[string]bool
}

func (f *fakeStore) Get(ctx context.Context, endpoint, ds string) (json.RawMessage, error) {
	if f.fail[ds] {
		return nil, fmt.Errorf("%s feed unavailable", ds)
	}
	return json.RawMessage(f.payloads[ds]), nil
}

func (f *fakeStore) Stats() map[string]int {
	return map[string]int{"rider": 2, "weekend": 1}
}

func newTestRouter(store *fakeStore) http.Handler {
	cfg := &config.Config{
		RidersURL:        "http://feed/riders",
		ConstructorsURL:  "http://feed/constructors",
		SquadsURL:        "http://feed/squads",
		EventsURL:        "http://feed/events",
		CORSAllowOrigins: []string{"*"},
		RateLimitEnabled: false,
	}
	svc := dataset.NewService(cfg, store, nil)
	return NewRouter(svc, store, cfg, nil)
}

func newAPIStore() *fakeStore {
	return &fakeStore{
		payloads: map[string]string{
			"rider": `[
			  {"id": 1, "first_name": "Maverick", "last_name": "Vinales",
			   "cost": 2500000, "country": "ES", "number": 12, "status": "active",
			   "constructor_id": 10, "squad_id": 20,
			   "stats": {"total_points": 55,
			     "events": {"1": {"final_position": 2, "final_points": 20, "points": 25}}}}
			]`,
			"constructor": `[{"id": 10, "name": "Ducati", "cost": 5000000, "num_riders": 2, "stats": {}}]`,
			"team":        `[{"id": 20, "name": "Alpha", "num_riders": 2, "is_wildcard": 0, "cost": 3000000, "stats": {}}]`,
			"weekend": `[{"id": 1, "name": "Qatar GP", "circuit": "Losail", "position": 1,
			   "status": "finished", "start": "2026-03-06", "end": "2026-03-08",
			   "races": [{"id": 101, "type": "RAC", "status": "finished", "is_race2": 0}]}]`,
		},
		fail: make(map[string]bool),
	}
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error envelope: %v: %s", err, rec.Body.String())
	}
	return body.Error.Code
}

func TestGetDatasetView(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newAPIStore())

	paths := []string{
		"/api/v1/riders/info",
		"/api/v1/riders/basic",
		"/api/v1/riders/stats",
		"/api/v1/riders/history",
		"/api/v1/riders/all",
		"/api/v1/constructors/info",
		"/api/v1/teams/basic",
		"/api/v1/weekends/events",
	}
	for _, path := range paths {
		rec := doRequest(t, router, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d: %s", path, rec.Code, rec.Body.String())
			continue
		}
		var body struct {
			Columns []string         `json:"columns"`
			Rows    []map[string]any `json:"rows"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("GET %s: bad body: %v", path, err)
		}
		if len(body.Columns) == 0 {
			t.Errorf("GET %s: empty column list", path)
		}
	}
}

func TestGetDatasetViewNotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newAPIStore())

	for _, path := range []string{"/api/v1/engines/info", "/api/v1/riders/telemetry"} {
		rec := doRequest(t, router, path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, rec.Code)
			continue
		}
		if code := decodeError(t, rec); code != "NOT_FOUND" {
			t.Errorf("GET %s error code = %q", path, code)
		}
	}
}

func TestGetDatasetViewUnavailable(t *testing.T) {
	t.Parallel()

	store := newAPIStore()
	store.fail["weekend"] = true
	router := newTestRouter(store)

	rec := doRequest(t, router, "/api/v1/weekends/info")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if code := decodeError(t, rec); code != "DATASET_UNAVAILABLE" {
		t.Errorf("error code = %q", code)
	}

	// One broken feed must not take the other datasets down.
	rec = doRequest(t, router, "/api/v1/riders/info")
	if rec.Code != http.StatusOK {
		t.Errorf("riders status = %d, want 200", rec.Code)
	}
}

func TestGetRiderFullData(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newAPIStore())

	rec := doRequest(t, router, "/api/v1/riders/full")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Columns []string         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Rows) == 0 {
		t.Fatal("no rows")
	}
	if body.Rows[0]["constructor"] != "Ducati" {
		t.Errorf("constructor = %v, want Ducati", body.Rows[0]["constructor"])
	}
	if body.Rows[0]["team"] != "Alpha" {
		t.Errorf("team = %v, want Alpha", body.Rows[0]["team"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newAPIStore())

	rec := doRequest(t, router, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d", rec.Code)
	}

	rec = doRequest(t, router, "/health/snapshots")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health/snapshots = %d", rec.Code)
	}
	var body struct {
		Snapshots map[string]int `json:"snapshots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Snapshots["rider"] != 2 {
		t.Errorf("snapshots = %v", body.Snapshots)
	}
}

func TestRootEndpoint(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(newAPIStore()), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["status"] != "running" {
		t.Errorf("body = %v", body)
	}
}

func TestTimingMiddleware(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(newAPIStore()), "/health")
	if rec.Header().Get("X-Process-Time") == "" {
		t.Error("X-Process-Time header missing")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	handler := RateLimitMiddleware(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Burst is half the per-window allowance; the first request passes, the
	// flood after it gets cut off.
	statuses := make([]int, 0, 4)
	var retryAfter string
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			retryAfter = rec.Header().Get("Retry-After")
		}
	}
	if statuses[0] != http.StatusOK {
		t.Errorf("first request = %d, want 200", statuses[0])
	}
	limited := false
	for _, s := range statuses[1:] {
		if s == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Errorf("no request was rate limited: %v", statuses)
	}
	// Retry-After reflects the configured window, not a fixed constant.
	if retryAfter != "60" {
		t.Errorf("Retry-After = %q, want %q", retryAfter, "60")
	}
}
