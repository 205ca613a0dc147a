package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client talks to the Zoho Inventory API using a long-lived refresh token.
// Every top-level call exchanges the refresh token for a fresh access token;
// nothing is cached between calls.
type Client struct {
	HttpClient        *http.Client
	ClientID          string
	ClientSecret      string
	RefreshToken      string
	OrganizationID    string
	AccountsBaseURL   string
	ApiBaseURL        string
	MaxPages          int
	FetchLineItems    bool
	DetailConcurrency int
}

type ClientOpts struct {
	ClientID          string
	ClientSecret      string
	RefreshToken      string
	OrganizationID    string
	DataCenter        string
	Timeout           time.Duration
	MaxPages          int
	FetchLineItems    bool
	DetailConcurrency int
}

func NewClient(opts ClientOpts) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = 10
	}
	concurrency := opts.DetailConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	return &Client{
		HttpClient:        &http.Client{Timeout: timeout},
		ClientID:          opts.ClientID,
		ClientSecret:      opts.ClientSecret,
		RefreshToken:      opts.RefreshToken,
		OrganizationID:    opts.OrganizationID,
		AccountsBaseURL:   AccountsBaseURL(opts.DataCenter),
		ApiBaseURL:        InventoryApiBaseURL(opts.DataCenter),
		MaxPages:          maxPages,
		FetchLineItems:    opts.FetchLineItems,
		DetailConcurrency: concurrency,
	}
}

type envelope struct {
	Code        int          `json:"code"`
	Message     string       `json:"message"`
	PageContext *pageContext `json:"page_context,omitempty"`
}

type pageContext struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	HasMorePage bool `json:"has_more_page"`
}

func (c Client) httpClient() *http.Client {
	if c.HttpClient != nil {
		return c.HttpClient
	}
	return http.DefaultClient
}

// tokenSource returns a token source bound to ctx. The returned source is
// safe for concurrent use and performs at most one refresh.
func (c Client) tokenSource(ctx context.Context) oauth2.TokenSource {
	config := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  strings.TrimRight(c.AccountsBaseURL, "/") + "/oauth/v2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient())
	return config.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken})
}

func (c Client) get(ctx context.Context, ts oauth2.TokenSource, path string, query url.Values, out any) error {
	if c.OrganizationID == "" {
		return fmt.Errorf("zoho organization id not configured")
	}

	token, err := ts.Token()
	if err != nil {
		return fmt.Errorf("failed to get zoho access token: %w", err)
	}

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("organization_id", c.OrganizationID)
	u := fmt.Sprintf("%s/inventory/v1%s?%s", strings.TrimRight(c.ApiBaseURL, "/"), path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token.AccessToken)

	response, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", path, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed with status code %d on %s: %s", response.StatusCode, path, string(responseBytes))
	}

	if err := json.Unmarshal(responseBytes, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}

func apiError(e envelope, fallback string) error {
	if e.Message != "" {
		return fmt.Errorf("%s: code %d: %s", fallback, e.Code, e.Message)
	}
	return fmt.Errorf("%s: code %d", fallback, e.Code)
}
