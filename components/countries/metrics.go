package countries

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts catalog requests. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Requests *prometheus.CounterVec
	Results  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "countryselect_catalog_requests_total",
				Help: "Total number of country catalog requests",
			},
			[]string{"status"},
		),
		Results: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "countryselect_catalog_results",
				Help:    "Number of options returned per catalog request",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Requests, m.Results} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) IncRequest(status string) {
	if m == nil || m.Requests == nil {
		return
	}

	m.Requests.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveResults(n int) {
	if m == nil || m.Results == nil {
		return
	}

	m.Results.Observe(float64(n))
}
