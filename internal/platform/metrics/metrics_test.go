package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
)

func TestNew_RegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.ObserveSubmission(metrics.ResultAccepted)
	m.ObserveSubmission(metrics.ResultAccepted)
	m.ObserveSubmission(metrics.ResultInvalid)
	m.ObserveLeadOutcome("failed_configuration")
	m.ObserveRateLimited("/api/contact")
	m.ObserveEmailSend("admin-notification", 120*time.Millisecond, nil)
	m.ObserveEmailSend("user-confirmation", time.Second, errors.New("smtp down"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultAccepted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultInvalid)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LeadOutcomes.WithLabelValues("failed_configuration")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateLimited.WithLabelValues("/api/contact")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.EmailSendDuration))
}

func TestNew_DuplicateRegistrationFails(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveSubmission(metrics.ResultSpam)
		m.ObserveLeadOutcome("skipped")
		m.ObserveEmailSend("test", time.Millisecond, nil)
		m.ObserveRateLimited("/api/contact")
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	t.Parallel()

	reg := metrics.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	m.ObserveSubmission(metrics.ResultAccepted)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `contact_submissions_total{result="accepted"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
