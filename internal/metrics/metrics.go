// Package metrics exposes Prometheus counters for hardware write activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lights tracks hardware-facing activity of the lights subsystem.
type Lights struct {
	registry *prometheus.Registry

	backlightWrites prometheus.Counter
	ledPrograms     *prometheus.CounterVec
	writeErrors     *prometheus.CounterVec
}

// NewLights creates the lights metrics set on a fresh registry.
func NewLights() *Lights {
	registry := prometheus.NewRegistry()

	l := &Lights{
		registry: registry,
		backlightWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lightsd_backlight_writes_total",
			Help: "Number of brightness values written to the backlight device",
		}),
		ledPrograms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lightsd_led_programs_total",
			Help: "Number of commands programmed into the LED controller, by winning slot",
		}, []string{"winner"}),
		writeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lightsd_write_errors_total",
			Help: "Number of failed hardware writes, by device",
		}, []string{"device"}),
	}

	registry.MustRegister(l.backlightWrites, l.ledPrograms, l.writeErrors)
	return l
}

// Handler returns the HTTP handler serving this registry.
func (l *Lights) Handler() http.Handler {
	return promhttp.HandlerFor(l.registry, promhttp.HandlerOpts{})
}

// BacklightWrite records a successful backlight write.
func (l *Lights) BacklightWrite() {
	if l == nil {
		return
	}
	l.backlightWrites.Inc()
}

// LEDProgram records a successful LED controller program for the winning slot.
func (l *Lights) LEDProgram(winner string) {
	if l == nil {
		return
	}
	l.ledPrograms.WithLabelValues(winner).Inc()
}

// WriteError records a failed hardware write for the given device.
func (l *Lights) WriteError(device string) {
	if l == nil {
		return
	}
	l.writeErrors.WithLabelValues(device).Inc()
}
