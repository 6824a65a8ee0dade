package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedService decorates a Service with Prometheus counters. The core
// store stays free of the metrics dependency; the process harness wraps the
// store when metrics are enabled and hands the wrapped Service to callers.
type InstrumentedService struct {
	next Service

	hits           prometheus.Counter
	misses         prometheus.Counter
	sets           prometheus.Counter
	deletes        prometheus.Counter
	patternDeleted prometheus.Counter
	expiredSwept   prometheus.Counter
	size           prometheus.GaugeFunc
}

// NewInstrumentedService wraps store and registers its collectors with reg
func NewInstrumentedService(store Service, reg prometheus.Registerer) *InstrumentedService {
	s := &InstrumentedService{
		next: store,
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of cache reads that returned a value",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of cache reads that missed (absent or expired)",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "cache",
			Name:      "sets_total",
			Help:      "Total number of cache writes",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "cache",
			Name:      "deletes_total",
			Help:      "Total number of single-key deletions that removed an entry",
		}),
		patternDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "cache",
			Name:      "pattern_deleted_keys_total",
			Help:      "Total number of keys removed by pattern invalidation",
		}),
		expiredSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "cache",
			Name:      "expired_swept_keys_total",
			Help:      "Total number of expired keys removed by the active sweep",
		}),
	}
	s.size = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "appointments",
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Current number of stored entries, including uncollected expired ones",
	}, func() float64 {
		return float64(store.Len())
	})

	reg.MustRegister(s.hits, s.misses, s.sets, s.deletes, s.patternDeleted, s.expiredSwept, s.size)
	return s
}

func (s *InstrumentedService) Get(key string) (string, bool) {
	value, ok := s.next.Get(key)
	if ok {
		s.hits.Inc()
	} else {
		s.misses.Inc()
	}
	return value, ok
}

func (s *InstrumentedService) Set(key, value string, ttl time.Duration) {
	s.next.Set(key, value, ttl)
	s.sets.Inc()
}

func (s *InstrumentedService) SetForever(key, value string) {
	s.next.SetForever(key, value)
	s.sets.Inc()
}

func (s *InstrumentedService) Delete(key string) bool {
	removed := s.next.Delete(key)
	if removed {
		s.deletes.Inc()
	}
	return removed
}

func (s *InstrumentedService) DeletePattern(pattern string) int {
	count := s.next.DeletePattern(pattern)
	s.patternDeleted.Add(float64(count))
	return count
}

func (s *InstrumentedService) Clear() {
	s.next.Clear()
}

func (s *InstrumentedService) CleanupExpired() int {
	count := s.next.CleanupExpired()
	s.expiredSwept.Add(float64(count))
	return count
}

func (s *InstrumentedService) Len() int {
	return s.next.Len()
}
