package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/httpclient"
)

// requester owns the request lifecycle for HubSpot calls: build, execute,
// close, status check, error translation and JSON decoding.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// do sends reqBody (nil for none) to path and decodes a wantStatus response
// into respBody (nil to discard). Any other status goes through
// TranslateHTTPError.
func (r *requester) do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.client.NewJSONRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Exhausted retries on a retryable status still hand back the
		// response; translate it so callers get a domain error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "crm request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		translated := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected crm status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translated
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
