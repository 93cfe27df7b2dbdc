package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Metrics struct {
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	PostWords          prometheus.Histogram
}

// New регистрирует метрики в reg; nil - регистрация в глобальном реестре
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		GenerationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkedin_agent_generations_total",
				Help: "Total number of post generations",
			},
			[]string{"provider", "status"},
		),
		GenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linkedin_agent_generation_duration_seconds",
				Help:    "Chat completion duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"provider"},
		),
		PostWords: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linkedin_agent_post_words",
				Help:    "Word count of generated posts",
				Buckets: []float64{25, 50, 100, 150, 200, 300, 500},
			},
		),
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordGeneration(provider, status string, duration time.Duration) {
	m.GenerationsTotal.WithLabelValues(provider, status).Inc()
	m.GenerationDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *Metrics) ObservePostWords(count int) {
	m.PostWords.Observe(float64(count))
}
