package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

var ErrNoAccessToken = errors.New("login response contained no access token")

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool             `json:"success"`
	AccessToken  string           `json:"accessToken"`
	Token        string           `json:"token"` // legacy alias of accessToken
	RefreshToken string           `json:"refreshToken"`
	Error        string           `json:"error"`
	Message      string           `json:"message"`
	User         UserTransport    `json:"user"`
	Children     []ChildTransport `json:"children"`
}

// Login posts credentials without a bearer header. The body is read as text
// before decoding so a misconfigured server returning an HTML error page
// produces a descriptive error instead of an opaque JSON parse failure.
func (c *DefaultClient) Login(ctx context.Context, phone, password string) (LoginResult, error) {
	b, err := json.Marshal(loginRequest{Phone: phone, Password: password})
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "failed to json encode the login request")
	}

	req, err := http.NewRequest(http.MethodPost, c.endpointURL("/auth/login"), bytes.NewReader(b))
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req.WithContext(ctx))
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "failed to execute the http request")
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "failed to read response body")
	}

	parsed := loginResponse{}
	if err := json.Unmarshal(unwrapEnvelope(raw), &parsed); err != nil {
		return LoginResult{}, errors.Wrapf(ErrNonJSONResponse, "status %s, body starts with %q", resp.Status, snippet(raw))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !parsed.Success {
		message := parsed.Error
		if message == "" {
			message = parsed.Message
		}
		if message == "" {
			return LoginResult{}, serverError(resp.StatusCode, resp.Status, raw)
		}
		return LoginResult{}, &Error{StatusCode: resp.StatusCode, Message: message}
	}

	accessToken := parsed.AccessToken
	if accessToken == "" {
		accessToken = parsed.Token
	}
	if accessToken == "" {
		return LoginResult{}, ErrNoAccessToken
	}

	if err := c.Session.StoreTokens(accessToken, parsed.RefreshToken); err != nil {
		return LoginResult{}, errors.Wrap(err, "failed to persist tokens")
	}

	result := LoginResult{User: parsed.User, Children: parsed.Children}
	if blob, err := json.Marshal(result); err == nil {
		if err := c.Session.SaveUser(blob); err != nil {
			c.Logger.Warn(ctx, "failed to save user session for relaunch", "err", err.Error())
		}
	}

	return result, nil
}

func (c *DefaultClient) ChangePassword(ctx context.Context, newPassword string) error {
	payload := map[string]string{"newPassword": newPassword}
	return c.post(ctx, "/auth/change-password", payload, nil)
}

func (c *DefaultClient) ChangePasswordStaff(ctx context.Context, oldPassword, newPassword string) error {
	payload := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.post(ctx, "/auth/change-password-staff", payload, nil)
}

func snippet(body []byte) string {
	const max = 80
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
