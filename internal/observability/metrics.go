package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "turisflow", Name: "bookings_total",
		Help: "Passenger groups booked onto trips",
	})
	OverbookedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "turisflow", Name: "overbooked_bookings_total",
		Help: "Bookings flagged overbooked at creation time",
	})
	RoutePlansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "turisflow", Name: "route_plans_total",
		Help: "Pickup route plans computed",
	})
	GeocodeCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "turisflow", Name: "geocode_cache_hits_total",
		Help: "Geocode lookups served from Redis",
	})
	GeocodeLookups = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "turisflow", Name: "geocode_lookups_total",
		Help: "Geocode lookups forwarded to the upstream provider",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "turisflow", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "turisflow",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
