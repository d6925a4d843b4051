package google

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/errs"
)

// Read-only scopes; this system never mutates the user's Google data.
var Scopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/calendar.readonly",
}

// AuthConfig points at the OAuth client-secrets file and a previously saved
// authorized-user token. Obtaining the token (the interactive consent flow)
// is outside this service; it only replays saved credentials.
type AuthConfig struct {
	CredentialsFile string
	TokenFile       string
	Scopes          []string
}

// HTTPClient builds an authenticated, auto-refreshing HTTP client from the
// saved token. Missing or malformed files surface as configuration errors.
func HTTPClient(ctx context.Context, cfg AuthConfig) (*http.Client, error) {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = Scopes
	}

	secrets, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, errs.Configuration("reading google credentials file", err)
	}
	oauthCfg, err := googleauth.ConfigFromJSON(secrets, scopes...)
	if err != nil {
		return nil, errs.Configuration("parsing google credentials file", err)
	}

	raw, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return nil, errs.Configuration("reading saved google token", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, errs.Configuration("parsing saved google token", err)
	}

	return oauthCfg.Client(ctx, &token), nil
}
