// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"traktlist/internal/trakt"
)

// MockAPI is a configurable test double for [tasks.API].
type MockAPI struct {
	SearchFunc       func(ctx context.Context, mediaType trakt.MediaType, query string) ([]trakt.SearchResult, error)
	ListItemsFunc    func(ctx context.Context, username, slug string) ([]trakt.ListItem, error)
	AddListItemsFunc func(ctx context.Context, username, slug string, payload trakt.AddItemsPayload) (*trakt.AddItemsResult, error)

	SearchCalls    int
	AddItemsCalls  []trakt.AddItemsPayload
	ListItemsCalls int
}

func (m *MockAPI) Search(ctx context.Context, mediaType trakt.MediaType, query string) ([]trakt.SearchResult, error) {
	m.SearchCalls++
	if m.SearchFunc == nil {
		return nil, nil
	}
	return m.SearchFunc(ctx, mediaType, query)
}

func (m *MockAPI) ListItems(ctx context.Context, username, slug string) ([]trakt.ListItem, error) {
	m.ListItemsCalls++
	if m.ListItemsFunc == nil {
		return nil, nil
	}
	return m.ListItemsFunc(ctx, username, slug)
}

func (m *MockAPI) AddListItems(ctx context.Context, username, slug string, payload trakt.AddItemsPayload) (*trakt.AddItemsResult, error) {
	m.AddItemsCalls = append(m.AddItemsCalls, payload)
	if m.AddListItemsFunc == nil {
		return &trakt.AddItemsResult{}, nil
	}
	return m.AddListItemsFunc(ctx, username, slug, payload)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// NewJSONResponse builds an [http.Response] with a JSON-encoded body for use with [MockRoundTripper].
func NewJSONResponse(t *testing.T, status int, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal response body: %v", err)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
