package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"artregistry/internal/app/client/config"
	"artregistry/internal/domain/art"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log.With("component", "http_client"),
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "ArtRegistry-Client/1.0",
	}
}

// SetToken sets the bearer token used for authenticated calls.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck verifies the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil
}

func (h *httpClient) Register(ctx context.Context, login, password string) error {
	body := map[string]string{"login": login, "password": password}
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, login, password string) (string, error) {
	body := map[string]string{"login": login, "password": password}
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", body)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	return loginResp.Token, nil
}

type pieceRequest struct {
	Title       string   `json:"title"`
	Size        int64    `json:"size"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (h *httpClient) CreateArt(ctx context.Context, title string, size int64, description string, tags []string) (int64, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/arts", pieceRequest{title, size, description, tags})
	if err != nil {
		return 0, err
	}

	var createResp struct {
		ID int64 `json:"id"`
	}
	if err := h.parseResponse(resp, &createResp); err != nil {
		return 0, err
	}

	return createResp.ID, nil
}

func (h *httpClient) GetArt(ctx context.Context, id int64) (*art.Piece, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/arts/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var getResp struct {
		Piece *art.Piece `json:"piece"`
	}
	if err := h.parseResponse(resp, &getResp); err != nil {
		return nil, err
	}

	return getResp.Piece, nil
}

func (h *httpClient) ListArts(ctx context.Context) ([]art.Piece, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/arts", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Pieces []art.Piece `json:"pieces"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Pieces, nil
}

func (h *httpClient) UpdateArt(ctx context.Context, id int64, title string, size int64, description string, tags []string) error {
	resp, err := h.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/arts/%d", id), pieceRequest{title, size, description, tags})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) TransferArt(ctx context.Context, id int64, newOwner string) error {
	body := map[string]string{"new_owner": newOwner}
	resp, err := h.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/arts/%d/transfer", id), body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) DeleteArt(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/arts/%d", id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) HasAccess(ctx context.Context, id int64, principal string) (bool, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/arts/%d/access/%s", id, principal), nil)
	if err != nil {
		return false, err
	}

	var accessResp struct {
		Granted bool `json:"granted"`
	}
	if err := h.parseResponse(resp, &accessResp); err != nil {
		return false, err
	}

	return accessResp.Granted, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(payload, &apiErr); err == nil {
			if apiErr.Detail != "" {
				return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Detail)
			}
			if apiErr.Error != "" {
				return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
			}
		}
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
