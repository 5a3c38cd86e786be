package tick

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	tok := &OAuthToken{
		AccessToken:  "abc",
		RefreshToken: "def",
		ExpiresAt:    time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, SaveToken(path, tok))

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, tok.AccessToken, loaded.AccessToken)
	assert.Equal(t, tok.RefreshToken, loaded.RefreshToken)
	assert.True(t, tok.ExpiresAt.Equal(loaded.ExpiresAt))
}

func TestToken_LoadMissingFile(t *testing.T) {
	_, err := LoadToken(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestToken_IsExpired(t *testing.T) {
	fresh := &OAuthToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, fresh.IsExpired())

	stale := &OAuthToken{ExpiresAt: time.Now().Add(-time.Hour)}
	assert.True(t, stale.IsExpired())
}

func TestOAuthFlow_MissingCredentials(t *testing.T) {
	_, err := OAuthFlow(t.Context(), OAuthConfig{}, func(string) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client credentials")
}

func TestOAuthFlow_ExchangesCodeWithPKCE(t *testing.T) {
	var exchange url.Values
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		exchange = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":3600}`)
	}))
	defer tokenSrv.Close()

	cfg := OAuthConfig{
		AuthURL:      "https://auth.example/authorize",
		TokenURL:     tokenSrv.URL + "/token",
		ClientID:     "cid",
		ClientSecret: "secret",
		Scope:        "tasks:read tasks:write",
	}

	// Stand in for the browser: follow the redirect straight back to the
	// local callback server.
	openBrowser := func(authURL string) error {
		u, err := url.Parse(authURL)
		if err != nil {
			return err
		}
		q := u.Query()
		assert.Equal(t, "cid", q.Get("client_id"))
		assert.Equal(t, "S256", q.Get("code_challenge_method"))
		assert.NotEmpty(t, q.Get("code_challenge"))
		cb := fmt.Sprintf("%s?code=auth-code&state=%s",
			q.Get("redirect_uri"), url.QueryEscape(q.Get("state")))
		resp, err := http.Get(cb)
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}

	tok, err := OAuthFlow(t.Context(), cfg, openBrowser)
	require.NoError(t, err)
	assert.Equal(t, "at-1", tok.AccessToken)
	assert.Equal(t, "rt-1", tok.RefreshToken)
	assert.False(t, tok.IsExpired())

	assert.Equal(t, "auth-code", exchange.Get("code"))
	assert.NotEmpty(t, exchange.Get("code_verifier"), "exchange carries the PKCE verifier")
}

func TestOAuthFlow_RejectsStateMismatch(t *testing.T) {
	cfg := OAuthConfig{
		AuthURL:      "https://auth.example/authorize",
		TokenURL:     "https://auth.example/token",
		ClientID:     "cid",
		ClientSecret: "secret",
	}

	openBrowser := func(authURL string) error {
		u, err := url.Parse(authURL)
		if err != nil {
			return err
		}
		cb := u.Query().Get("redirect_uri") + "?code=auth-code&state=forged"
		resp, err := http.Get(cb)
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}

	_, err := OAuthFlow(t.Context(), cfg, openBrowser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state mismatch")
}
