package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Refresher mints a new access token from a refresh token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RefresherFunc adapts a function to Refresher
type RefresherFunc func(ctx context.Context, refreshToken string) (string, error)

func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return f(ctx, refreshToken)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

type httpRefresher struct {
	URL    string
	client *http.Client
}

// Refresh posts the refresh token to the refresh endpoint. The client must not
// be routed through the gateway itself.
func (h *httpRefresher) Refresh(ctx context.Context, refreshToken string) (string, error) {
	data, err := json.Marshal(&refreshRequest{Refresh: refreshToken})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status %d", ErrRefreshRejected, resp.StatusCode)
	}
	var payload refreshResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if payload.Access == "" {
		return "", fmt.Errorf("%w: empty access token", ErrRefreshRejected)
	}
	return payload.Access, nil
}

// NewRefresher creates a refresher posting {"refresh": token} to URL
func NewRefresher(URL string, client *http.Client) Refresher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRefresher{URL: URL, client: client}
}
