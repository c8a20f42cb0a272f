// Package blobstore implements the external binary storage contract for
// attached article images.
package blobstore

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newsroom-cms/internal/repository"
	"newsroom-cms/internal/resilience/retry"
)

// CloudinaryConfig contains configuration for the Cloudinary media backend.
type CloudinaryConfig struct {
	// CloudName identifies the Cloudinary account; part of the upload URL.
	CloudName string

	// UploadPreset is the unsigned upload preset configured on the account.
	UploadPreset string

	// Folder is the asset folder uploads are placed in.
	Folder string

	// APIKey and APISecret sign destroy requests. Uploads are unsigned.
	APIKey    string
	APISecret string

	// Timeout is the HTTP request timeout for Cloudinary API calls.
	Timeout time.Duration

	// BaseURL overrides the API endpoint; used by tests.
	BaseURL string
}

// CloudinaryStore stores article images in Cloudinary.
type CloudinaryStore struct {
	config     CloudinaryConfig
	httpClient *http.Client
}

func NewCloudinaryStore(config CloudinaryConfig) *CloudinaryStore {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://api.cloudinary.com/v1_1"
	}
	return &CloudinaryStore{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// uploadResponse is the subset of the Cloudinary upload response we consume.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload sends the content as an unsigned multipart upload and returns the
// blob's display URL and its public ID, the handle used to delete it later.
func (store *CloudinaryStore) Upload(ctx context.Context, content io.Reader, suggestedName string) (repository.BlobRef, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", suggestedName)
	if err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: read content: %w", err)
	}
	if err := writer.WriteField("upload_preset", store.config.UploadPreset); err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: %w", err)
	}
	if store.config.Folder != "" {
		if err := writer.WriteField("folder", store.config.Folder); err != nil {
			return repository.BlobRef{}, fmt.Errorf("upload: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", store.config.BaseURL, store.config.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := store.httpClient.Do(req)
	if err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return repository.BlobRef{}, fmt.Errorf("upload: %w",
			&retry.HTTPError{StatusCode: resp.StatusCode, Message: string(detail)})
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: decode response: %w", err)
	}
	if parsed.SecureURL == "" || parsed.PublicID == "" {
		return repository.BlobRef{}, fmt.Errorf("upload: response missing secure_url or public_id")
	}

	slog.Debug("blob uploaded", slog.String("public_id", parsed.PublicID))
	return repository.BlobRef{URL: parsed.SecureURL, Key: parsed.PublicID}, nil
}

// Delete destroys the asset identified by key. Destroy requests must be
// signed: the signature is the SHA-1 of the sorted parameters plus the API
// secret. Failures are reported but callers treat deletion as best-effort.
func (store *CloudinaryStore) Delete(ctx context.Context, key string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := store.sign("public_id=" + key + "&timestamp=" + timestamp)

	form := url.Values{}
	form.Set("public_id", key)
	form.Set("timestamp", timestamp)
	form.Set("api_key", store.config.APIKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", store.config.BaseURL, store.config.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := store.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("delete: %w",
			&retry.HTTPError{StatusCode: resp.StatusCode, Message: string(detail)})
	}
	return nil
}

func (store *CloudinaryStore) sign(params string) string {
	sum := sha1.Sum([]byte(params + store.config.APISecret))
	return fmt.Sprintf("%x", sum)
}
