package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInEstablishesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signin", r.URL.Path)

		var req signInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "alice" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(signInResponse{Token: "tok-1", Username: "alice"})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	assert.False(t, p.Current().Authenticated)

	sess, err := p.SignIn(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, sess, p.Current())
}

func TestSignInRejectedKeepsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	_, err := p.SignIn(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidLogin)
	assert.False(t, p.Current().Authenticated)
}

func TestSignOutClearsSessionEvenOnRemoteFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/signin":
			_ = json.NewEncoder(w).Encode(signInResponse{Token: "tok-1", Username: "alice"})
		case "/auth/signout":
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	_, err := p.SignIn(context.Background(), "alice", "secret")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(context.Background()))
	assert.Equal(t, 1, calls)
	assert.False(t, p.Current().Authenticated)

	// Signing out twice is a no-op.
	require.NoError(t, p.SignOut(context.Background()))
	assert.Equal(t, 1, calls)
}
