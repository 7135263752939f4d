package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Import metrics
	ImportFiles      *prometheus.CounterVec
	ImportRows       *prometheus.CounterVec
	ImportDuration   *prometheus.HistogramVec
	ImportBatchSize  *prometheus.HistogramVec
	ImportFileErrors *prometheus.CounterVec

	// Search metrics
	SearchRequests  prometheus.Counter
	SearchCacheHits prometheus.Counter
	SearchCacheMiss prometheus.Counter
	SearchDuration  prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Import metrics
		ImportFiles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_import_files_total",
				Help: "Total import files processed by entity and result",
			},
			[]string{"entity", "result"},
		),
		ImportRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_import_rows_total",
				Help: "Total import rows processed by entity and result",
			},
			[]string{"entity", "result"},
		),
		ImportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finrecords_import_duration_seconds",
				Help:    "Duration of file import operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity"},
		),
		ImportBatchSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finrecords_import_batch_size",
				Help:    "Number of rows staged per bulk write",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
			},
			[]string{"entity"},
		),
		ImportFileErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_import_file_errors_total",
				Help: "Total file-level import failures by entity",
			},
			[]string{"entity"},
		),

		// Search metrics
		SearchRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finrecords_search_requests_total",
			Help: "Total record search requests",
		}),
		SearchCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finrecords_search_cache_hits_total",
			Help: "Total search responses served from cache",
		}),
		SearchCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finrecords_search_cache_misses_total",
			Help: "Total search requests that went to the store",
		}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finrecords_search_duration_seconds",
			Help:    "Duration of record search operations",
			Buckets: prometheus.DefBuckets,
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finrecords_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finrecords_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "finrecords_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finrecords_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
