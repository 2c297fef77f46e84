package assessment

// Metrics holds the computed values for a single body region,
// keyed by metric name. A region where the needed landmarks were
// not visible has an empty Metrics map, and every lookup falls
// back to zero so that downstream classification defaults to
// normal movement and low risk.
type Metrics map[string]float64

// Get returns the metric value, or 0 when the metric is absent.
func (m Metrics) Get(name string) float64 {
	return m[name]
}

// GetOr returns the metric value, or def when the metric is absent.
func (m Metrics) GetOr(name string, def float64) float64 {
	if v, ok := m[name]; ok {
		return v
	}
	return def
}

// Region names used across assessment results.
const (
	RegionCervical       = "cervical"
	RegionShoulder       = "shoulder"
	RegionSpinal         = "spinal"
	RegionPelvic         = "pelvic"
	RegionLowerExtremity = "lower_extremity"
)
