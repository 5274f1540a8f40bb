// Package client talks to a running wordbook server over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const (
	DefaultBaseURL          = "http://localhost:4040"
	DefaultMaxRetryAttempts = 2

	definitionsPath = "/api/definitions"
)

var (
	ErrNotFound  = errors.New("word not found")
	ErrDuplicate = errors.New("word already exists")
)

// APIError is a non-successful response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewClient(baseURL string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
		retryDelay:       100 * time.Millisecond,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Define stores a new definition and returns the server's confirmation message.
func (client *Client) Define(ctx context.Context, word, definition string) (string, error) {
	var message string
	err := client.withRetry(ctx, isRetryableDefineError, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(dictionary.Entry{Word: word, Definition: definition}).
			Post(definitionsPath)
		if err != nil {
			return fmt.Errorf("httpClient.Post > %w", err)
		}

		switch response.StatusCode() {
		case http.StatusCreated:
			message = response.String()
			return nil
		case http.StatusConflict:
			return ErrDuplicate
		default:
			return newAPIError(response.StatusCode(), response.String())
		}
	})
	if err != nil {
		return "", err
	}
	return message, nil
}

// Lookup returns the stored entry for word.
func (client *Client) Lookup(ctx context.Context, word string) (dictionary.Entry, error) {
	var entry dictionary.Entry
	err := client.withRetry(ctx, isRetryableError, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetQueryParam("word", word).
			SetResult(&dictionary.Entry{}).
			Get(definitionsPath)
		if err != nil {
			return fmt.Errorf("httpClient.Get > %w", err)
		}

		switch response.StatusCode() {
		case http.StatusOK:
			result, ok := response.Result().(*dictionary.Entry)
			if !ok || result == nil {
				return fmt.Errorf("empty response body: %s", response.String())
			}
			entry = *result
			return nil
		case http.StatusNotFound:
			return ErrNotFound
		default:
			return newAPIError(response.StatusCode(), response.String())
		}
	})
	if err != nil {
		return dictionary.Entry{}, err
	}
	return entry, nil
}

func (client *Client) withRetry(ctx context.Context, retryable func(error) bool, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !retryable(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Debug("Retrying a wordbook API call",
				"attempt", n+1,
				"error", err)
		}),
	)
}

// isRetryableError reports whether the request may succeed when sent again.
// Transport failures, 5xx and 429 responses are retried.
func isRetryableError(err error) bool {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError ||
			apiErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// isRetryableDefineError reports whether a definition can be sent again without risking a second insert.
// Only failures before the server handles the request qualify: dial errors, 429 and 503.
func isRetryableDefineError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode == http.StatusServiceUnavailable
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

type errorResponse struct {
	Error string `json:"error"`
}

// newAPIError extracts the message from a {"error": ...} object or a bare JSON string body.
func newAPIError(statusCode int, body string) *APIError {
	var decoded errorResponse
	if err := json.Unmarshal([]byte(body), &decoded); err == nil && decoded.Error != "" {
		return &APIError{StatusCode: statusCode, Message: decoded.Error}
	}
	var message string
	if err := json.Unmarshal([]byte(body), &message); err == nil {
		return &APIError{StatusCode: statusCode, Message: message}
	}
	return &APIError{StatusCode: statusCode, Message: body}
}
