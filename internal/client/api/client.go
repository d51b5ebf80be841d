// Package api is the HTTP client for the clipshare endpoints.
package api

import (
	"bytes"
	"clipshare/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

const maxErrorBytes = 64 << 10

// StatusError is returned for any non-2xx response. Message is the server's "error" field when present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match a 401 with domain.ErrUnauthorized
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return nil
}

// Client talks to a clipshare server
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient returns Client. token is sent as a Bearer session when not empty.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// ListVideos fetches the gallery. A payload that is not a JSON array is ErrUnexpectedFormat.
func (c *Client) ListVideos(ctx context.Context) ([]domain.Video, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/video", nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.ErrUnexpectedFormat
	}
	videos := []domain.Video{}
	if err := json.Unmarshal(trimmed, &videos); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnexpectedFormat, err)
	}
	return videos, nil
}

// UploadVideo posts the file and its metadata as multipart form data
func (c *Client) UploadVideo(ctx context.Context, upload domain.VideoUpload) (*domain.Video, error) {
	fields := map[string]string{
		"title":        upload.Title,
		"description":  upload.Description,
		"originalSize": strconv.FormatInt(upload.OriginalSize, 10),
	}
	body, err := c.postMultipart(ctx, "/api/video-upload", fields, upload.FileName, upload.File)
	if err != nil {
		return nil, err
	}

	var video domain.Video
	if err := json.Unmarshal(body, &video); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnexpectedFormat, err)
	}
	return &video, nil
}

// UploadImage posts an image and returns its reference token
func (c *Client) UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error) {
	body, err := c.postMultipart(ctx, "/api/image-upload", nil, upload.FileName, upload.File)
	if err != nil {
		return "", err
	}

	var res struct {
		PublicID string `json:"publicId"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnexpectedFormat, err)
	}
	if res.PublicID == "" {
		return "", fmt.Errorf("%w: response has no publicId", domain.ErrUnexpectedFormat)
	}
	return res.PublicID, nil
}

// FetchBytes downloads an absolute URL, typically a rendition URL on the delivery host
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileName string, file io.Reader) ([]byte, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeForm(form, fields, fileName, file))
	}()

	req, err := c.newRequest(ctx, http.MethodPost, path, pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.do(req)
}

func writeForm(form *multipart.Writer, fields map[string]string, fileName string, file io.Reader) error {
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := form.CreateFormFile("file", fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	return form.Close()
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBytes)).Decode(&payload); err == nil {
			statusErr.Message = payload.Error
		}
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
