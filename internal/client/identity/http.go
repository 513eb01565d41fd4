package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/akarpovs/stockkeeper/internal/common"
)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// HTTPProvider implements Provider against the identity endpoints of the
// reference server. Session state is owned by the single-threaded client
// event loop.
type HTTPProvider struct {
	baseURL string
	http    *http.Client
	session Session
}

// NewHTTPProvider builds a provider for the given identity endpoint base URL.
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{baseURL: baseURL, http: &http.Client{}}
}

// SignIn exchanges credentials for a bearer token and flips the provider
// into authenticated mode.
func (p *HTTPProvider) SignIn(ctx context.Context, username, password string) (Session, error) {
	data, err := json.Marshal(signInRequest{Username: username, Password: password})
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/signin", bytes.NewReader(data))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return Session{}, common.ErrInvalidLogin
	}
	if resp.StatusCode != http.StatusOK {
		return Session{}, fmt.Errorf("sign-in failed: status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, err
	}

	var sr signInResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return Session{}, fmt.Errorf("decoding sign-in response: %w", err)
	}
	if sr.Token == "" || sr.Username == "" {
		return Session{}, fmt.Errorf("sign-in response missing token or username")
	}

	p.session = Session{Authenticated: true, Username: sr.Username, Token: sr.Token}
	return p.session, nil
}

// SignOut notifies the provider and drops the local session. The local
// session is cleared even if the remote call fails: the user asked to leave.
func (p *HTTPProvider) SignOut(ctx context.Context) error {
	if !p.session.Authenticated {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/signout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.session.Token)

	p.session = Session{}

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()
	return nil
}

// Current returns the session as of this call.
func (p *HTTPProvider) Current() Session {
	return p.session
}
