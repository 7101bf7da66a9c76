package hubspot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.LeadClient    = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

const (
	contactsPath = "/crm/v3/objects/contacts"
	searchPath   = contactsPath + "/search"
	notesPath    = "/crm/v3/objects/notes"
)

// Client is the outbound adapter for HubSpot contacts and notes. The
// underlying httpclient.Client supplies bearer auth, circuit breaking,
// retries and tracing; its breaker state doubles as the health signal.
type Client struct {
	http   *httpclient.Client
	req    *requester
	policy *bluemonday.Policy
}

// NewClient creates a Client. The httpclient must already carry the private
// app token (httpclient.WithBearerToken).
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		http:   client,
		req:    &requester{client: client, logger: logger},
		policy: bluemonday.StrictPolicy(),
	}
}

// CreateLead creates a contact. HubSpot answers 409 when the email is
// already taken, surfaced as domain.ErrConflict.
func (c *Client) CreateLead(ctx context.Context, props lead.Properties) (string, error) {
	var resp objectResponse
	if err := c.req.do(ctx, http.MethodPost, contactsPath, http.StatusCreated, toObjectInput(props), &resp); err != nil {
		return "", fmt.Errorf("creating contact: %w", err)
	}
	return resp.ID, nil
}

// SearchLeadByEmail finds the contact whose email matches exactly.
func (c *Client) SearchLeadByEmail(ctx context.Context, email string) (string, error) {
	var resp searchResponse
	if err := c.req.do(ctx, http.MethodPost, searchPath, http.StatusOK, toEmailSearch(email), &resp); err != nil {
		return "", fmt.Errorf("searching contact: %w", err)
	}
	if len(resp.Results) == 0 || resp.Results[0].ID == "" {
		return "", fmt.Errorf("contact with email: %w", domain.ErrNotFound)
	}
	return resp.Results[0].ID, nil
}

// UpdateLead patches the given properties on contact id.
func (c *Client) UpdateLead(ctx context.Context, id string, props lead.Properties) error {
	path := contactsPath + "/" + url.PathEscape(id)
	if err := c.req.do(ctx, http.MethodPatch, path, http.StatusOK, toObjectInput(props), nil); err != nil {
		return fmt.Errorf("updating contact %s: %w", id, err)
	}
	return nil
}

// AddNote creates a note associated with contact id.
func (c *Client) AddNote(ctx context.Context, id string, note lead.Note) error {
	if err := c.req.do(ctx, http.MethodPost, notesPath, http.StatusCreated, toNoteInput(id, note, c.policy), nil); err != nil {
		return fmt.Errorf("adding note to contact %s: %w", id, err)
	}
	return nil
}

// Verify reads a single contact page to prove the token is accepted.
func (c *Client) Verify(ctx context.Context) error {
	var page pageResponse
	if err := c.req.do(ctx, http.MethodGet, contactsPath+"?limit=1", http.StatusOK, nil, &page); err != nil {
		return fmt.Errorf("verifying crm access: %w", err)
	}
	return nil
}

// Name returns the name registered with the health registry.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state without a network call.
// Readiness does not call HubSpot so the breaker can recover while the
// service keeps taking traffic.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
