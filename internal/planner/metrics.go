package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics registered on the default registry.
var (
	plansBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mediarename_plans_built_total",
		Help: "Total number of rename plans built.",
	})
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediarename_renders_total",
		Help: "Total number of template renders by result status.",
	}, []string{"status"})
	renderCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mediarename_render_cache_hits_total",
		Help: "Total number of render cache hits.",
	})
	renderCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mediarename_render_cache_misses_total",
		Help: "Total number of render cache misses.",
	})
	conflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediarename_plan_conflicts_total",
		Help: "Total number of plan conflicts by kind.",
	}, []string{"kind"})
)
