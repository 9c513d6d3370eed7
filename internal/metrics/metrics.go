// Package metrics counts generated passwords and clipboard outcomes on a
// private Prometheus registry. A CLI run has no scrape endpoint, so the
// registry can be written to a node_exporter textfile instead.
package metrics

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pwdgen"

// Metrics holds the collectors of one run.
type Metrics struct {
	Registry *prometheus.Registry

	generated *prometheus.CounterVec
	invalid   prometheus.Counter
	clipboard *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		generated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Number of generated passwords, differentiated by alphabet size.",
		}, []string{"alphabet_size"}),
		invalid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_requests_total",
			Help:      "Number of requests rejected because of an invalid length.",
		}),
		clipboard: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clipboard_copies_total",
			Help:      "Number of clipboard copy attempts, differentiated by result.",
		}, []string{"result"}),
	}
}

// Generated counts a password drawn from an alphabet of the given size.
func (m *Metrics) Generated(alphabetSize int) {
	m.generated.WithLabelValues(strconv.Itoa(alphabetSize)).Inc()
}

// Invalid counts a rejected request.
func (m *Metrics) Invalid() {
	m.invalid.Inc()
}

// Clipboard counts a clipboard copy attempt.
func (m *Metrics) Clipboard(copied bool) {
	result := "unsupported"
	if copied {
		result = "copied"
	}

	m.clipboard.WithLabelValues(result).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, m.Registry); err != nil {
		return errors.Wrapf(err, "can't write metrics textfile %s", filename)
	}

	return nil
}
