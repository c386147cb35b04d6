package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLightsCounters(t *testing.T) {
	l := NewLights()

	l.BacklightWrite()
	l.BacklightWrite()
	l.LEDProgram("notification")
	l.LEDProgram("notification")
	l.LEDProgram("charging")
	l.WriteError("backlight")

	if got := testutil.ToFloat64(l.backlightWrites); got != 2 {
		t.Errorf("backlight writes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(l.ledPrograms.WithLabelValues("notification")); got != 2 {
		t.Errorf("notification programs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(l.ledPrograms.WithLabelValues("charging")); got != 1 {
		t.Errorf("charging programs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(l.writeErrors.WithLabelValues("backlight")); got != 1 {
		t.Errorf("backlight errors = %v, want 1", got)
	}
}

func TestNilLightsIsSafe(t *testing.T) {
	// The arbiter takes a nil metrics set when metrics are disabled
	var l *Lights
	l.BacklightWrite()
	l.LEDProgram("attention")
	l.WriteError("led")
}

func TestHandlerServesRegistry(t *testing.T) {
	l := NewLights()
	l.LEDProgram("attention")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	l.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "lightsd_led_programs_total") {
		t.Error("Metrics output missing lightsd_led_programs_total")
	}
}
