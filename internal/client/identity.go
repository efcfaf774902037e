package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
)

// IdentityClient talks to the external identity provider's REST
// surface. The provider is a black box: it verifies credentials and
// mints an opaque bearer token that is never inspected here.
type IdentityClient struct {
	base   string
	apiKey string
	hc     *http.Client
}

func NewIdentityClient(baseURL, apiKey string, hc *http.Client) *IdentityClient {
	return &IdentityClient{base: baseURL, apiKey: apiKey, hc: hc}
}

type identityResult struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

// SignIn verifies the credentials and returns the minted bearer token.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (string, error) {
	res, err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}
	if res.IDToken == "" {
		return "", errdefs.New(errdefs.KindCredential, "login failed: provider returned no token")
	}
	return res.IDToken, nil
}

// SignUp creates the account and returns the provider-assigned uid
// together with a token for the new session.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (uid, token string, err error) {
	res, err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", "", err
	}
	return res.LocalID, res.IDToken, nil
}

func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	_, err := c.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	})
	return err
}

func (c *IdentityClient) post(ctx context.Context, action string, payload map[string]any) (identityResult, error) {
	body, ct, err := jsonBody(payload)
	if err != nil {
		return identityResult{}, err
	}
	url := c.base + "/" + action + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return identityResult{}, errdefs.Wrap(errdefs.KindUnavailable, err.Error(), err)
	}
	req.Header.Set("Content-Type", ct)

	resp, err := c.hc.Do(req)
	if err != nil {
		return identityResult{}, errdefs.Wrap(errdefs.KindUnavailable, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return identityResult{}, errdefs.New(errdefs.KindCredential, providerMessage(resp.Body))
	}
	var res identityResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return identityResult{}, errdefs.Wrap(errdefs.KindCredential, "malformed provider response", err)
	}
	return res, nil
}

// providerMessage pulls the provider's own error text out of its nested
// envelope; it is shown to the user verbatim.
func providerMessage(body io.Reader) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil || envelope.Error.Message == "" {
		return "authentication failed"
	}
	return envelope.Error.Message
}
