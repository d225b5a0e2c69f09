package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// ShiprocketClient reads shipment statuses from the Shiprocket panel API.
// Shiprocket does not use the commerce envelope; its payloads are decoded
// directly.
type ShiprocketClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewShiprocketClient(cfg *config.ShiprocketConfig) *ShiprocketClient {
	return &ShiprocketClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// OrderStatuses returns the raw status string of every shipment Shiprocket
// knows about. Entries without a status are kept as empty strings so counts
// still line up with shipment counts.
func (c *ShiprocketClient) OrderStatuses(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/shiprocket/orders/status", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, apperror.NewAppError(http.StatusBadGateway,
			"shiprocket returned status "+strconv.Itoa(resp.StatusCode))
	}

	var data struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	statuses := make([]string, 0, len(data.Data))
	for _, shipment := range data.Data {
		statuses = append(statuses, shipment.Status)
	}
	return statuses, nil
}
