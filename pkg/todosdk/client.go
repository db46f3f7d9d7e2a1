package todosdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account. The server grants it the Default role.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/users/register", "", req)
	if err != nil {
		return nil, err
	}

	var env Response[*User]
	if err := decodeEnvelope(resp, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/users/login", "", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var env Response[LoginResponse]
	if err := decodeEnvelope(resp, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return c.NewSession(env.Data.Token, env.Data.User), nil
}

// NewSession wraps an already issued token.
func (c *Client) NewSession(token string, user *User) *Session {
	return &Session{client: c, token: token, user: user}
}

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var env Response[HealthResponse]
	if err := decodeEnvelope(resp, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
