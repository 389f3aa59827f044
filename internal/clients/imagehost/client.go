// Package imagehost talks to the external image-hosting service that
// stores item photographs. Uploads are fatal to the enclosing write when
// they fail; deletes are best-effort and the caller only logs failures.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/pkg/config"
)

const defaultRetryWaitMax = time.Second * 5

type Uploader interface {
	Upload(ctx context.Context, data []byte, mimeType, originalName, category, flightNumber string) (entity.Image, error)
	Delete(ctx context.Context, publicID string) error
}

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

var _ Uploader = (*Client)(nil)

func NewClient(cfg config.ImageHostConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = nil

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type uploadResponse struct {
	PublicID     string `json:"publicId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (c *Client) Upload(
	ctx context.Context, data []byte, mimeType, originalName, category, flightNumber string,
) (entity.Image, error) {
	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	err := mw.WriteField("category", category)
	if err != nil {
		return entity.Image{}, fmt.Errorf("write category field: %w", err)
	}

	err = mw.WriteField("flightNumber", flightNumber)
	if err != nil {
		return entity.Image{}, fmt.Errorf("write flightNumber field: %w", err)
	}

	part, err := mw.CreateFormFile("file", originalName)
	if err != nil {
		return entity.Image{}, fmt.Errorf("create form file: %w", err)
	}

	_, err = part.Write(data)
	if err != nil {
		return entity.Image{}, fmt.Errorf("write file part: %w", err)
	}

	err = mw.Close()
	if err != nil {
		return entity.Image{}, fmt.Errorf("close multipart writer: %w", err)
	}

	url := c.baseURL + "/v1/images"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return entity.Image{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Original-Content-Type", mimeType)

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Image{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return entity.Image{}, fmt.Errorf("upload image: unexpected code %d: %s", resp.StatusCode, b)
	}

	var uploaded uploadResponse

	err = json.NewDecoder(resp.Body).Decode(&uploaded)
	if err != nil {
		return entity.Image{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.Image{
		PublicID:     uploaded.PublicID,
		URL:          uploaded.URL,
		ThumbnailURL: uploaded.ThumbnailURL,
	}, nil
}

func (c *Client) Delete(ctx context.Context, publicID string) error {
	url := fmt.Sprintf("%s/v1/images/%s", c.baseURL, publicID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete image %s: unexpected code %d", publicID, resp.StatusCode)
	}

	return nil
}
