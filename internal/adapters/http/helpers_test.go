package http_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

func mocksStatus() ports.IntegrationStatus {
	return ports.IntegrationStatus{Email: true, EmailProvider: "smtp", CRM: true}
}

func extractTimestamp(t *testing.T, body string) string {
	t.Helper()
	var v struct {
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	require.NotEmpty(t, v.Timestamp)
	return v.Timestamp
}
