package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contract_portal_query_duration_seconds",
			Help:    "Query pipeline duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"domain"},
	)

	QueryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_portal_query_total",
			Help: "Total number of queries processed",
		},
		[]string{"domain", "status"},
	)

	SpellCorrections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contract_portal_spell_corrections_total",
			Help: "Total queries with at least one spelling correction applied",
		},
	)

	BusinessRuleViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contract_portal_business_rule_violations_total",
			Help: "Total queries rejected by business rules (parts creation)",
		},
	)

	EntitiesExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "contract_portal_entities_extracted",
			Help:    "Number of entities extracted per query",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_portal_cache_hits_total",
			Help: "Total response cache hits",
		},
		[]string{"backend"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_portal_cache_misses_total",
			Help: "Total response cache misses",
		},
		[]string{"backend"},
	)

	LexiconReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_portal_lexicon_reloads_total",
			Help: "Total lexicon reload attempts",
		},
		[]string{"status"},
	)
)

func Init() {
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(QueryTotal)
	prometheus.MustRegister(SpellCorrections)
	prometheus.MustRegister(BusinessRuleViolations)
	prometheus.MustRegister(EntitiesExtracted)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(LexiconReloads)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
