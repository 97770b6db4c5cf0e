package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "musicschool_job_runs_total",
		Help: "Completed job runs by name.",
	}, []string{"job"})

	jobErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "musicschool_job_errors_total",
		Help: "Failed job runs by name.",
	}, []string{"job"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "musicschool_job_duration_seconds",
		Help:    "Job run duration by name.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
)
