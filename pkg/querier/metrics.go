package querier

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	methodExec     = "exec"
	methodQuery    = "query"
	methodQueryRow = "query_row"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "dispatch_db_query_duration_seconds",
		Help:    "Duration of postgres statements",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"method", "status"},
)

func observe(method string, start time.Time, err error) {
	QueryDuration.WithLabelValues(method, status(err)).Observe(time.Since(start).Seconds())
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, pgx.ErrNoRows):
		return "no_rows"
	default:
		return "error"
	}
}
