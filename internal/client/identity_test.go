package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visheshsahu1513/Smart-Learning/internal/client"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
)

func TestIdentitySignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		json.NewEncoder(w).Encode(map[string]string{"idToken": "T1", "localId": "fb-uid-1"})
	}))
	defer srv.Close()

	c := client.NewIdentityClient(srv.URL, "test-key", srv.Client())
	token, err := c.SignIn(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
}

func TestIdentitySignInRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"INVALID_PASSWORD"}}`)
	}))
	defer srv.Close()

	c := client.NewIdentityClient(srv.URL, "test-key", srv.Client())
	_, err := c.SignIn(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, errdefs.KindCredential, errdefs.KindOf(err))
	// provider message shown verbatim
	assert.Contains(t, err.Error(), "INVALID_PASSWORD")
}

func TestIdentitySignUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signUp", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"idToken": "T2", "localId": "fb-uid-2"})
	}))
	defer srv.Close()

	c := client.NewIdentityClient(srv.URL, "test-key", srv.Client())
	uid, token, err := c.SignUp(context.Background(), "new@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid-2", uid)
	assert.Equal(t, "T2", token)
}

func TestIdentitySendPasswordReset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:sendOobCode", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PASSWORD_RESET", body["requestType"])
		json.NewEncoder(w).Encode(map[string]string{"email": "a@b.com"})
	}))
	defer srv.Close()

	c := client.NewIdentityClient(srv.URL, "test-key", srv.Client())
	require.NoError(t, c.SendPasswordReset(context.Background(), "a@b.com"))
}
