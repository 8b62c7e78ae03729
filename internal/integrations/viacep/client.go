// Package viacep implements the postal-code lookup client used for address
// autofill in the reservation form.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client calls the ViaCEP HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a ViaCEP client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Lookup resolves an 8-digit CEP into a structured address.
// Returns ErrCEPNotFound both for the service's "erro" payload and for a 404:
// the caller treats every non-success identically as "no autofill".
func (c *Client) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := brdoc.Digits(cep)
	if !brdoc.IsValidCEP(digits) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCEP, cep)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Lookup: request failed for cep=%s: %v", digits, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCEP, cep)
	case http.StatusNotFound:
		return nil, ErrCEPNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if payload.Erro {
		c.log.Info("Lookup: cep=%s not found", digits)
		return nil, ErrCEPNotFound
	}

	return &payload.Address, nil
}
