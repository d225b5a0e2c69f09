// Package upstream implements the HTTP clients for the gateway's external
// collaborators: the commerce REST API, the Shiprocket shipping aggregator
// and the GST summary helper. Responses are parsed here, at the boundary,
// into fully-defaulted entities; nothing past this package touches raw JSON.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// envelope is the `{success, message, data}` shape every commerce API
// response uses. Data stays raw until the caller decodes it into the
// endpoint-specific payload.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// apiClient is the shared request plumbing for the commerce and GST clients.
type apiClient struct {
	baseURL string
	client  *http.Client
}

// doJSON performs one request and decodes the response envelope's data field
// into out (which may be nil for mutations). Non-2xx statuses map onto the
// apperror taxonomy so handlers can forward them untranslated.
func (c *apiClient) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 {
		// tolerate endpoints that skip the envelope and return the
		// payload directly
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var env envelope
	message := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		if json.Unmarshal(body, &env) == nil {
			message = env.Message
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperror.ErrNotFound
	case http.StatusUnauthorized:
		return apperror.ErrUnauthorized
	case http.StatusForbidden:
		return apperror.ErrForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message != "" {
			return apperror.NewBadRequestError(message)
		}
		return apperror.ErrBadRequest
	case http.StatusConflict:
		if message != "" {
			return apperror.NewConflictError(message)
		}
		return apperror.ErrConflict
	default:
		return apperror.NewAppError(http.StatusBadGateway,
			"upstream returned status "+strconv.Itoa(resp.StatusCode))
	}
}
