package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/car-rental-system/pkg/metrics"
)

const serviceName = "car-rental-web"

// Client is the outbound HTTP client for the remote rental REST API. It
// owns all status-code and payload discrimination so the screens never
// inspect response shapes themselves. Every call is attempted exactly
// once; the circuit breaker fails fast, it does not retry.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	log     logger.Logger
}

func New(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cb:      newBreaker("rentalAPI", log),
		log:     log,
	}
}

func newBreaker(name string, log logger.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				ctx := wrap.WithAction(context.Background(), "circuit_breaker_state_change")
				log.Warn(ctx, "circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				// Client-side outcomes must not trip the breaker.
				var reqErr *types.RequestError
				if errors.As(err, &reqErr) {
					return reqErr.Status >= 400 && reqErr.Status < 500
				}
				return false
			},
		},
	)
}

// call issues a single request through the circuit breaker and returns the
// status code and raw body. A bearer token is attached when non-empty.
func (c *Client) call(ctx context.Context, op, method, path string, params url.Values, token string, contentType string, body []byte) (int, []byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	start := time.Now()
	result, err := c.cb.Execute(func() (any, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, &types.RequestError{Message: fmt.Sprintf("%s: failed to build request", op), Err: err}
		}

		req.Header.Set("Accept", "text/plain")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &types.RequestError{Message: fmt.Sprintf("%s: request failed", op), Err: err}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &types.RequestError{Message: fmt.Sprintf("%s: failed to read response", op), Err: err}
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &types.RequestError{
				Status:  resp.StatusCode,
				Message: serverMessage(raw),
			}
		}

		return rawResponse{status: resp.StatusCode, body: raw}, nil
	})

	metrics.RecordRentalAPICall(serviceName, op, err, time.Since(start))

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &types.RequestError{Message: fmt.Sprintf("%s: rental API temporarily unavailable", op), Err: err}
		}
		return 0, nil, wrap.Error(ctx, err)
	}

	res := result.(rawResponse)
	return res.status, res.body, nil
}

type rawResponse struct {
	status int
	body   []byte
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, op, path string, params url.Values, token string, out any) error {
	_, raw, err := c.call(ctx, op, http.MethodGet, path, params, token, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return wrap.Error(ctx, &types.RequestError{Message: fmt.Sprintf("%s: failed to decode response", op), Err: err})
	}
	return nil
}

// postJSON performs a POST with a JSON body and returns the raw response.
func (c *Client) postJSON(ctx context.Context, op, path string, params url.Values, token string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: failed to encode payload: %w", op, err))
	}
	_, raw, err := c.call(ctx, op, http.MethodPost, path, params, token, "application/json", body)
	return raw, err
}

// serverMessage extracts the API's error text: the `message` field of a
// JSON body when present, the raw body text otherwise.
func serverMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}

// businessMessage extracts the `message` discriminant from a 2xx payload.
// An empty result means plain success.
func businessMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload.Message
	}
	return ""
}
