package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasydata_feed_fetches_total",
			Help: "Total feed HTTP fetches by dataset and outcome",
		},
		[]string{"dataset", "status"},
	)

	SnapshotCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasydata_snapshot_cache_hits_total",
			Help: "Snapshot reads served from the on-disk store",
		},
		[]string{"dataset"},
	)

	SnapshotCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasydata_snapshot_cache_misses_total",
			Help: "Snapshot reads that required a network fetch",
		},
		[]string{"dataset"},
	)

	SnapshotCorruptRefetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasydata_snapshot_corrupt_refetches_total",
			Help: "On-disk snapshots that failed to parse and were refetched",
		},
		[]string{"dataset"},
	)

	DatasetBuildFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasydata_dataset_build_failures_total",
			Help: "Dataset facade constructions aborted by an error",
		},
		[]string{"dataset"},
	)
)
