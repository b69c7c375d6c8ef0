package resttable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"certgen/internal"
	"certgen/internal/config"
)

// Client inserts submission records into a PostgREST-style remote table
// (base URL + /rest/v1/<table>, apikey + bearer auth).
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TableTimeoutMs) * time.Millisecond},
		limiter:    NewRateLimiter(cfg.TableRateLimitRPS),
	}
}

func (c *Client) Insert(ctx context.Context, record internal.SubmissionRecord) error {
	if strings.TrimSpace(c.cfg.TableAPIKey) == "" {
		return errors.New("missing TABLE_API_KEY")
	}
	if strings.TrimSpace(c.cfg.TableAPIBaseURL) == "" {
		return errors.New("missing TABLE_API_BASE_URL")
	}

	endpoint, err := url.JoinPath(strings.TrimRight(c.cfg.TableAPIBaseURL, "/"), "rest", "v1", c.cfg.TableName)
	if err != nil {
		return err
	}

	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= 5; attempt++ {
		c.limiter.WaitTurn()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("apikey", c.cfg.TableAPIKey)
		req.Header.Set("Authorization", "Bearer "+c.cfg.TableAPIKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if isRetryableStatus(resp.StatusCode) && attempt < 5 {
				backoff := time.Duration(250*(1<<(attempt-1))+rand.Intn(100)) * time.Millisecond
				time.Sleep(backoff)
				lastErr = fmt.Errorf("table api status %d", resp.StatusCode)
				continue
			}
			var apiErr apiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
				return fmt.Errorf("table api error: %s", apiErr.Message)
			}
			return fmt.Errorf("table api error: status=%d body=%s", resp.StatusCode, string(respBody))
		}

		var inserted []json.RawMessage
		if err := json.Unmarshal(respBody, &inserted); err != nil {
			return fmt.Errorf("table api response: %w", err)
		}
		if len(inserted) == 0 {
			return errors.New("table api response data was empty")
		}
		return nil
	}

	if lastErr == nil {
		lastErr = errors.New("table api request failed")
	}
	return lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
