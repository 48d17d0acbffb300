// Trakt API client
//
// Response types based on https://trakt.docs.apiary.io/
package trakt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"traktlist/internal/shared"
)

const (
	defaultBaseURL = "https://api.trakt.tv"
	authorizeURL   = "https://trakt.tv/oauth/authorize"
	tokenURL       = "https://trakt.tv/oauth/token"
	apiVersion     = "2"

	// RedirectURIOOB is the out-of-band redirect URI: the user copies the
	// authorization code from the browser instead of a local callback.
	RedirectURIOOB = "urn:ietf:wg:oauth:2.0:oob"
)

// StatusError is a non-2xx response from the Trakt API.
// Wraps [shared.ErrAPIRequest] so callers can match the class with errors.Is
// and inspect the status code with errors.As.
type StatusError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s %s returned status %d", shared.ErrAPIRequest, e.Method, e.Path, e.Status)
}

func (e *StatusError) Unwrap() error { return shared.ErrAPIRequest }

// Client is a bearer-authenticated JSON client for the Trakt API.
//
// Every authenticated call carries the content type, bearer token,
// API version and API key (= client id) headers.
type Client struct {
	baseURL    string
	clientID   string
	token      string
	httpClient *http.Client
}

// NewClient creates a Trakt API client. An empty baseURL selects the
// production API; a nil client selects [http.DefaultClient].
func NewClient(baseURL, clientID string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		clientID:   clientID,
		httpClient: client,
	}
}

// SetToken sets the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// SetClientID updates the API key header value after first-run setup.
func (c *Client) SetClientID(clientID string) { c.clientID = clientID }

// doRequest performs an authenticated HTTP request against the Trakt API.
//
// A 403 maps to [shared.ErrAuthExpired] regardless of endpoint; any other
// non-2xx surfaces as a [StatusError] for the caller to interpret.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, query url.Values, body, result any) error {
	if c.token == "" {
		return fmt.Errorf("%w: no access token set", shared.ErrNotAuthenticated)
	}

	apiURL := c.baseURL + endpoint
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("trakt-api-version", apiVersion)
	req.Header.Set("trakt-api-key", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s %s", shared.ErrAuthExpired, method, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Status: resp.StatusCode,
			Method: method,
			Path:   endpoint,
			Body:   string(data),
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Search queries the catalog for titles of the given media type and returns
// the raw result list in server order.
func (c *Client) Search(ctx context.Context, mediaType MediaType, query string) ([]SearchResult, error) {
	endpoint := fmt.Sprintf("/search/%s", mediaType)
	params := url.Values{"query": {query}}

	var results []SearchResult
	if err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// ListItems fetches the current contents of a user list.
// A missing list surfaces as [shared.ErrListNotFound].
func (c *Client) ListItems(ctx context.Context, username, slug string) ([]ListItem, error) {
	endpoint := fmt.Sprintf("/users/%s/lists/%s/items", url.PathEscape(username), url.PathEscape(slug))

	var items []ListItem
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, nil, &items); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s/%s", shared.ErrListNotFound, username, slug)
		}
		return nil, err
	}

	return items, nil
}

// ListExists probes for a user list by slug.
func (c *Client) ListExists(ctx context.Context, username, slug string) (bool, error) {
	endpoint := fmt.Sprintf("/users/%s/lists/%s", url.PathEscape(username), url.PathEscape(slug))

	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, nil, nil); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// UserLists fetches all of a user's lists.
func (c *Client) UserLists(ctx context.Context, username string) ([]List, error) {
	endpoint := fmt.Sprintf("/users/%s/lists", url.PathEscape(username))

	var lists []List
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, nil, &lists); err != nil {
		return nil, err
	}

	return lists, nil
}

// CreateList creates a new user list. A 420 response maps to
// [shared.ErrQuotaExceeded]; anything other than 201 is fatal.
func (c *Client) CreateList(ctx context.Context, username string, payload ListPayload) (*List, error) {
	endpoint := fmt.Sprintf("/users/%s/lists", url.PathEscape(username))

	var created List
	if err := c.doRequest(ctx, http.MethodPost, endpoint, nil, payload, &created); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status == 420 {
			return nil, fmt.Errorf("%w: list creation rejected, check your account limits or try again later", shared.ErrQuotaExceeded)
		}
		return nil, err
	}

	return &created, nil
}

// AddListItems submits one batch of items to a user list.
func (c *Client) AddListItems(ctx context.Context, username, slug string, payload AddItemsPayload) (*AddItemsResult, error) {
	endpoint := fmt.Sprintf("/users/%s/lists/%s/items", url.PathEscape(username), url.PathEscape(slug))

	var result AddItemsResult
	if err := c.doRequest(ctx, http.MethodPost, endpoint, nil, payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
