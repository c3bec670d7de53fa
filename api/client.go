package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/ka2n/mealdb/log"
	"github.com/morikuni/failure/v2"
)

// DefaultBaseURL is the public TheMealDB JSON API, using the shared test key "1"
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1/"

// Diagnostic messages written when a lookup falls back to its empty result
const (
	MsgNetworkError = "Network error occurred."
	MsgDecodeError  = "Error decoding JSON."
)

// Client talks to TheMealDB.
// Lookups never return errors: failures are reported on Diagnostics and the lookup yields its empty result.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Diagnostics io.Writer
}

// NewClient creates a client for the public API with HTTP tracing enabled
func NewClient() *Client {
	return &Client{
		BaseURL:     DefaultBaseURL,
		HTTPClient:  &http.Client{Transport: log.HTTPTransport()},
		Diagnostics: os.Stderr,
	}
}

func (c *Client) endpointURL(endpoint string, params url.Values) (*url.URL, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, failure.New(ErrInvalidBaseURL,
			failure.Message("Invalid API base URL"),
			failure.Context{
				"base_url": c.BaseURL,
				"error":    err.Error(),
			},
		)
	}
	u := base.JoinPath(endpoint)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u, nil
}

// get issues a single GET against endpoint and decodes the JSON body into out
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u, err := c.endpointURL(endpoint, params)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return failure.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return failure.New(ErrNetwork,
			failure.Message("Failed to reach TheMealDB"),
			failure.Context{
				"url":   u.String(),
				"error": err.Error(),
			},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure.New(ErrUnexpectedStatus,
			failure.Message("TheMealDB returned an unexpected status"),
			failure.Context{
				"url":    u.String(),
				"status": strconv.Itoa(resp.StatusCode),
			},
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failure.New(ErrDecode,
			failure.Message("Failed to decode TheMealDB response"),
			failure.Context{
				"url":   u.String(),
				"error": err.Error(),
			},
		)
	}
	return nil
}

// diagnose writes a one-line diagnostic for the user
func (c *Client) diagnose(format string, args ...any) {
	w := c.Diagnostics
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// degrade reports a failed lookup. Decode failures and transport failures get distinct diagnostics.
func (c *Client) degrade(op string, err error) {
	log.Debug("Lookup failed", "op", op, "error", err)
	if failure.Is(err, ErrDecode) {
		c.diagnose(MsgDecodeError)
		return
	}
	c.diagnose(MsgNetworkError)
}
