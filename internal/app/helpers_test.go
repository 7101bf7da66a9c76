package app

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
)

const adminAddress = "hola@moonhaus.es"

var fixedNow = time.Date(2026, 10, 18, 12, 5, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := contact.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	return loc
}

func newMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("metrics.New() error = %v", err)
	}
	return m
}

func validInput() contact.Input {
	return contact.Input{
		Name:      "Ana Pérez",
		Email:     "  Ana.Perez@Test.com ",
		Phone:     "+34 600 123 456",
		Message:   "Me interesa un puesto fijo en el coworking.",
		IP:        "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	}
}

func validSubmission() contact.Submission {
	return contact.Submission{
		ID:         "sub-1",
		Name:       "Ana Pérez",
		Email:      "ana.perez@test.com",
		Phone:      "+34 600 123 456",
		Message:    "Me interesa un puesto fijo en el coworking.",
		ReceivedAt: fixedNow,
	}
}

func leadConfig(t *testing.T) LeadSinkConfig {
	return LeadSinkConfig{Enabled: true, Tags: lead.DefaultTags(), Location: madrid(t)}
}
