package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"netcompare/domain/core"
	"netcompare/internal/errors"
)

// Table names in the hosted base
const (
	TableLeads             = "LEADS"
	TableClicks            = "CLICKS"
	TableReviews           = "REVIEWS"
	TableAffiliateEarnings = "AFFILIATE_EARNINGS"
)

const defaultEndpoint = "https://api.airtable.com/v0"

// Client talks to the hosted record store over HTTPS with bearer-token
// auth. All operations are blocking and fire-and-forget from the
// caller's perspective: errors come back as EXTERNAL_SERVICE_ERROR and
// are downgraded to warnings upstream.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Config holds client construction parameters
type Config struct {
	APIKey  string
	BaseID  string
	BaseURL string // override for tests; empty uses the public endpoint
	Timeout time.Duration
}

// NewClient creates a record store client for one base
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("%s/%s", defaultEndpoint, cfg.BaseID)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// record is the wire form of a stored row
type record struct {
	ID          string                 `json:"id,omitempty"`
	Fields      map[string]interface{} `json:"fields"`
	CreatedTime string                 `json:"createdTime,omitempty"`
}

type recordsEnvelope struct {
	Records []record `json:"records"`
}

// CreateRecord inserts one row into a table and returns the assigned ID
func (c *Client) CreateRecord(ctx context.Context, table string, fields map[string]interface{}) (core.RecordID, error) {
	payload := recordsEnvelope{Records: []record{{Fields: fields}}}

	var created recordsEnvelope
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/"+table, payload, &created); err != nil {
		return "", err
	}
	if len(created.Records) == 0 {
		return "", errors.ExternalService("airtable", fmt.Errorf("create into %s returned no records", table))
	}
	return core.RecordID(created.Records[0].ID), nil
}

// ListRecords fetches rows from a table, optionally filtered by a
// formula expression.
func (c *Client) ListRecords(ctx context.Context, table, filterFormula string) ([]record, error) {
	endpoint := c.baseURL + "/" + table
	if filterFormula != "" {
		endpoint += "?filterByFormula=" + url.QueryEscape(filterFormula)
	}

	var listed recordsEnvelope
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &listed); err != nil {
		return nil, err
	}
	return listed.Records, nil
}

// UpdateRecord patches fields on an existing row
func (c *Client) UpdateRecord(ctx context.Context, table string, id core.RecordID, fields map[string]interface{}) error {
	payload := record{Fields: fields}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%s/%s", c.baseURL, table, id), payload, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.ExternalService("airtable", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.ExternalService("airtable", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.ExternalService("airtable",
			fmt.Errorf("%s %s returned %d: %s", method, endpoint, resp.StatusCode, truncate(string(respBody), 200)))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.ExternalService("airtable", fmt.Errorf("malformed response: %w", err))
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
