package tick

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// OAuthToken holds cached OAuth credentials.
type OAuthToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired returns true if the token has expired.
func (t *OAuthToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// TokenPath returns the default path for the cached service token.
func TokenPath() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "tickdo", "token.json")
}

// SaveToken writes a token to disk with restrictive permissions.
func SaveToken(path string, tok *OAuthToken) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadToken reads a token from disk.
func LoadToken(path string) (*OAuthToken, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok OAuthToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// OAuthConfig holds the OAuth application settings for the browser flow.
type OAuthConfig struct {
	AuthURL      string // authorization endpoint
	TokenURL     string // token exchange endpoint
	ClientID     string
	ClientSecret string
	Scope        string
}

// DefaultOAuthConfig returns the service's OAuth endpoints with credentials
// filled in from the environment.
func DefaultOAuthConfig() OAuthConfig {
	return OAuthConfig{
		AuthURL:      "https://ticktick.com/oauth/authorize",
		TokenURL:     "https://ticktick.com/oauth/token",
		ClientID:     os.Getenv("TICKDO_CLIENT_ID"),
		ClientSecret: os.Getenv("TICKDO_CLIENT_SECRET"),
		Scope:        "tasks:read tasks:write",
	}
}

func (c OAuthConfig) oauth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       strings.Fields(c.Scope),
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.AuthURL,
			TokenURL: c.TokenURL,
		},
	}
}

// OAuthFlow performs the browser-based authorization-code flow with PKCE and
// returns a token. The openBrowser callback is injectable for testing; pass
// nil for default behavior.
func OAuthFlow(ctx context.Context, cfg OAuthConfig, openBrowser func(string) error) (*OAuthToken, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("missing client credentials: set TICKDO_CLIENT_ID and TICKDO_CLIENT_SECRET")
	}

	// Start local callback server on an ephemeral port.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	redirectURI := fmt.Sprintf("http://127.0.0.1:%d/callback", port)

	conf := cfg.oauth2Config(redirectURI)
	verifier := oauth2.GenerateVerifier()
	state := randomState()

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("state"); got != state {
			errCh <- fmt.Errorf("state mismatch in callback")
			fmt.Fprint(w, "Error: state mismatch")
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			errCh <- fmt.Errorf("no code in callback: %s", r.URL.RawQuery)
			fmt.Fprint(w, "Error: no authorization code received")
			return
		}
		codeCh <- code
		fmt.Fprint(w, "Authorization successful! You can close this tab.")
	})

	srv := &http.Server{Handler: mux}
	go func() { _ = srv.Serve(listener) }()
	defer func() { _ = srv.Shutdown(ctx) }()

	authURL := conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	if openBrowser == nil {
		openBrowser = defaultOpenBrowser
	}
	if err := openBrowser(authURL); err != nil {
		return nil, fmt.Errorf("open browser: %w", err)
	}

	// Wait for the OAuth callback or timeout.
	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tok, err := conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token exchange returned no access token")
	}

	expires := tok.Expiry
	if expires.IsZero() {
		// The service issues long-lived tokens without an expiry; assume
		// 180 days so a stale token eventually re-runs the flow.
		expires = time.Now().Add(24 * 180 * time.Hour)
	}
	return &OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    expires,
	}, nil
}

func randomState() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func defaultOpenBrowser(rawURL string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		if strings.TrimSpace(os.Getenv("DISPLAY")) == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("no display available; open %s manually", rawURL)
		}
		return exec.Command("xdg-open", rawURL).Start()
	}
}
