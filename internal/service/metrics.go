package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	payloadSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payload_submissions_total",
		Help: "Total number of payload submissions.",
	}, []string{"result"})

	transformCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transform_cache_lookups_total",
		Help: "Total number of transform cache lookups.",
	}, []string{"result"})
)
