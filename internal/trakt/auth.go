package trakt

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"traktlist/internal/shared"
)

// TokenStore persists the access token. SetToken must write through to
// durable storage before returning.
type TokenStore interface {
	Token() string
	SetToken(token string) error
}

// CodePrompter supplies the user-pasted authorization code for an authorize URL.
// Implementations present the URL to the user and collect the code out of band.
type CodePrompter interface {
	AuthCode(authorizeURL string) (string, error)
}

// AuthConfig carries the OAuth2 client settings for an [AuthSession].
// Endpoint is overridable for tests; the zero value selects Trakt's endpoints.
type AuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Endpoint     oauth2.Endpoint
}

// AuthSession drives the authorization-code exchange against Trakt's OAuth
// endpoints and persists tokens write-through via a [TokenStore].
type AuthSession struct {
	config *oauth2.Config
	store  TokenStore
	codes  CodePrompter
}

// NewAuthSession creates an AuthSession for the given client credentials.
func NewAuthSession(cfg AuthConfig, store TokenStore, codes CodePrompter) *AuthSession {
	if cfg.RedirectURI == "" {
		cfg.RedirectURI = RedirectURIOOB
	}
	if cfg.Endpoint.AuthURL == "" {
		cfg.Endpoint = oauth2.Endpoint{AuthURL: authorizeURL, TokenURL: tokenURL}
	}

	config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint:     cfg.Endpoint,
	}

	return &AuthSession{config: config, store: store, codes: codes}
}

// AuthorizeURL returns the browser URL the user visits to approve the app.
func (s *AuthSession) AuthorizeURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Obtain returns the stored access token unchanged when one exists; no expiry
// check is performed. Otherwise it runs the interactive exchange and persists
// the new token before returning it.
func (s *AuthSession) Obtain(ctx context.Context) (string, error) {
	if token := s.store.Token(); token != "" {
		return token, nil
	}
	return s.exchange(ctx)
}

// Reauthorize runs the interactive exchange unconditionally, overwriting the
// stored token. Invoked in response to a 403 from any downstream call; the
// caller aborts the current run afterwards and the user restarts, since the
// in-flight operation cannot be retried cleanly with the late token.
func (s *AuthSession) Reauthorize(ctx context.Context) (string, error) {
	return s.exchange(ctx)
}

func (s *AuthSession) exchange(ctx context.Context) (string, error) {
	if s.config.ClientID == "" || s.config.ClientSecret == "" {
		return "", fmt.Errorf("%w: client id and secret are required for authorization", shared.ErrMissingCredentials)
	}

	state := shared.GenerateID()
	code, err := s.codes.AuthCode(s.config.AuthCodeURL(state))
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: code exchange failed: %v", shared.ErrAuthFailed, err)
	}

	// Persist before returning so a crash after exchange keeps the token.
	if err := s.store.SetToken(token.AccessToken); err != nil {
		return "", fmt.Errorf("failed to persist access token: %w", err)
	}

	return token.AccessToken, nil
}
