package logger

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// PrometheusHook calls Prometheus statistics at log write.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook run method.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel && h.counter != nil {
		h.counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook returns a hook counting how often a specific log level was used.
// The counter is registered on reg, an already registered counter is reused.
func NewPrometheusHook(reg prometheus.Registerer, service string) (PrometheusHook, error) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "log_statements_total",
			Help:        "Number of log statements, differentiated by log level.",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"level"},
	)

	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return PrometheusHook{}, errors.Wrap(err, "can't register log statement counter")
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return PrometheusHook{}, errors.Wrap(err, "log statement counter has unexpected type")
		}

		counter = existing
	}

	return PrometheusHook{counter: counter}, nil
}
