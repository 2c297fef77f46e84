package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// CounterRequests: all incoming HTTP requests
	CounterRequests *prometheus.CounterVec
	// CounterAssessments: full posture assessments done
	CounterAssessments prometheus.Counter
	// CounterQuickChecks: quick posture checks done
	CounterQuickChecks prometheus.Counter
	// CounterBodyNotDetected: assessment requests where no usable landmarks were found
	CounterBodyNotDetected prometheus.Counter
	// CounterTreatmentPlans: generated treatment plans
	CounterTreatmentPlans prometheus.Counter
	// CounterTreatmentPlansCacheHit: treatment plans served from cache
	CounterTreatmentPlansCacheHit prometheus.Counter
	// CounterHandAnalyses: hand gesture analyses done
	CounterHandAnalyses prometheus.Counter

	// GaugeRequests: number of requests currently being handled
	GaugeRequests prometheus.Gauge
	// GaugeLifeSignal: heartbeat gauge, flipped periodically by the service
	GaugeLifeSignal prometheus.Gauge

	// HistRequestDuration: request durations in milliseconds
	HistRequestDuration prometheus.Histogram
	// HistAssessmentDuration: posture assessment durations in milliseconds
	HistAssessmentDuration prometheus.Histogram
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	return &Manager{
		CounterRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "total_requests",
		}, []string{"method"}),
		CounterAssessments: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "assessments_total",
		}),
		CounterQuickChecks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "quick_checks_total",
		}),
		CounterBodyNotDetected: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "body_not_detected_total",
		}),
		CounterTreatmentPlans: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "treatment_plans_total",
		}),
		CounterTreatmentPlansCacheHit: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "treatment_plans_cache_hit_total",
		}),
		CounterHandAnalyses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "hand_analyses_total",
		}),
		GaugeRequests: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
		}),
		GaugeLifeSignal: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
		}),
		HistRequestDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_millis",
			Buckets:   []float64{1, 5, 10, 50, 100, 250, 500, 1000, 2500},
		}),
		HistAssessmentDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "assessment_duration_millis",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// NewTestManager returns a metrics manager registered against a
// throwaway registry, to be used in tests.
func NewTestManager() *Manager {
	return NewManager("test", "posturecheck", prometheus.NewRegistry())
}
