// Package auth implements the Google OAuth2 authorization-code flow and
// the session-scoped credential store.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
)

// Flow wraps the oauth2 client configuration for the Drive read-only
// scope. The redirect target is fixed per deployment.
type Flow struct {
	cfg *oauth2.Config
}

// NewFlow parses a Google client-secret JSON (the "web" application
// kind) and pins the scope and redirect URL.
func NewFlow(clientSecretJSON []byte, redirectURL string) (*Flow, error) {
	cfg, err := google.ConfigFromJSON(clientSecretJSON, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret: %w", err)
	}
	if redirectURL != "" {
		cfg.RedirectURL = redirectURL
	}
	return &Flow{cfg: cfg}, nil
}

// AuthURL returns the provider consent URL carrying the given state.
func (f *Flow) AuthURL(state string) string {
	return f.cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for a credential bundle.
func (f *Flow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := f.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return tok, nil
}

// HTTPClient returns an HTTP client that authorizes requests with tok.
func (f *Flow) HTTPClient(ctx context.Context, tok *oauth2.Token) *http.Client {
	return f.cfg.Client(ctx, tok)
}
