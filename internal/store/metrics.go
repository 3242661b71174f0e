package store

import "github.com/prometheus/client_golang/prometheus"

// RegisterMetrics registers per-collection record-count gauges with reg.
// Kept out of New so tests can construct stores without touching the default
// registry.
func (s *Store) RegisterMetrics(reg prometheus.Registerer) {
	collections := []string{"users", "properties", "marketData", "teamActivity", "documents", "comments"}

	for _, collection := range collections {
		collection := collection
		reg.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace:   "realtydash",
				Subsystem:   "store",
				Name:        "records",
				Help:        "Number of records held per collection.",
				ConstLabels: prometheus.Labels{"collection": collection},
			},
			func() float64 {
				return float64(s.Counts()[collection])
			},
		))
	}
}
