package question

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "question_parse_total",
		Help: "Parsed question inputs by detected format and validity.",
	}, []string{"format", "valid"})

	parseCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "question_parse_cache_hits_total",
		Help: "Parse results served from cache, by layer.",
	}, []string{"layer"})

	importTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "question_import_total",
		Help: "Imported question inputs by outcome.",
	}, []string{"outcome"})

	importQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "question_import_queue_depth",
		Help: "Async import jobs waiting for a worker.",
	})
)
