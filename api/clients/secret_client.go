package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/secretdrop/secretdrop/api"
)

// SecretProvider is the client-side contract for the secretdrop API.
type SecretProvider interface {
	Create(ctx context.Context, secret string) (*api.CreateSecretResponse, error)
	Retrieve(ctx context.Context, id string) (string, error)
}

// SecretClient implements SecretProvider over HTTP against a secretdrop
// server.
type SecretClient struct {
	// ServerAddr is the base URL of the secretdrop server
	ServerAddr string

	// Client is the HTTP client to use; http.DefaultClient when nil
	Client *http.Client
}

func (c *SecretClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// Create submits a secret and returns the one-time id and expiry deadline.
func (c *SecretClient) Create(ctx context.Context, secret string) (*api.CreateSecretResponse, error) {
	body, err := json.Marshal(api.CreateSecretRequest{Secret: secret})
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/api/v1/secret", c.ServerAddr)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not request create endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("create endpoint returned non-201 response: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("create endpoint returned error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsedResponse api.CreateSecretResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsedResponse); err != nil {
		return nil, fmt.Errorf("could not parse create response: %w", err)
	}

	return &parsedResponse, nil
}

// Retrieve exchanges an id for its secret. Returns api.ErrSecretNotFound when
// the id does not resolve to a live secret; the server does not say why.
func (c *SecretClient) Retrieve(ctx context.Context, id string) (string, error) {
	reqURL := fmt.Sprintf("%s/api/v1/secret/%s", c.ServerAddr, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("could not request retrieve endpoint: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", api.ErrSecretNotFound
	default:
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("retrieve endpoint returned non-200 response: %d", resp.StatusCode)
		}
		return "", fmt.Errorf("retrieve endpoint returned error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsedResponse api.RetrieveSecretResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsedResponse); err != nil {
		return "", fmt.Errorf("could not parse retrieve response: %w", err)
	}

	return parsedResponse.Secret, nil
}

// MockSecretProvider implements a mock SecretProvider for testing.
type MockSecretProvider struct {
	mock.Mock
}

// Create implements the SecretProvider interface for testing.
func (m *MockSecretProvider) Create(ctx context.Context, secret string) (*api.CreateSecretResponse, error) {
	args := m.Called(ctx, secret)
	return args.Get(0).(*api.CreateSecretResponse), args.Error(1)
}

// Retrieve implements the SecretProvider interface for testing.
func (m *MockSecretProvider) Retrieve(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
