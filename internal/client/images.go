// Image hosting passthrough. Cocktail images are uploaded to an external
// hosting service that returns a public URL; the service itself is a black
// box behind ImageUploader.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/config"
)

type ImageUploader interface {
	Upload(ctx context.Context, name, srcURL string) (string, error)
}

// NewImageUploader returns the HTTP uploader when an endpoint is configured,
// otherwise a no-op that leaves img_url empty.
func NewImageUploader(cfg config.ImagesConfig) ImageUploader {
	if cfg.UploadURL == "" {
		return &NoopUploader{}
	}
	return &HTTPUploader{
		uploadURL: cfg.UploadURL,
		apiKey:    cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type HTTPUploader struct {
	uploadURL  string
	apiKey     string
	httpClient *http.Client
}

type uploadRequest struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Folder string `json:"folder"`
}

type uploadResponse struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

func (u *HTTPUploader) Upload(ctx context.Context, name, srcURL string) (string, error) {
	payload, err := json.Marshal(uploadRequest{
		Name:   name,
		URL:    srcURL,
		Folder: "cocktails/",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+u.apiKey)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image upload failed: status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("image upload failed: %s", result.Error)
	}

	return result.URL, nil
}

type NoopUploader struct{}

func (u *NoopUploader) Upload(ctx context.Context, name, srcURL string) (string, error) {
	return "", nil
}
