package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spfbase/payments/internal/entity"
	"github.com/spfbase/payments/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   time.Second,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type ValidateTokenRequest struct {
	Token string `json:"accessToken"`
}

type ValidateTokenResponse struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// User resolves an access token into the account it belongs to.
func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(ValidateTokenRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("%w: unexpected status code: %d\nbody: %s", entity.ErrUnauthenticated, resp.StatusCode, body)
	}

	var data ValidateTokenResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.User{
		Name:        data.Name,
		Permissions: data.Permissions,
	}, nil
}
