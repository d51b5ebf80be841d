// Package platform holds the host integrations the client flows depend on.
package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// safeFileName keeps fileName inside the target directory without dropping any of it
func safeFileName(fileName string) string {
	name := separatorReplacer.Replace(strings.TrimSpace(fileName))
	if name == "" || name == "." || name == ".." {
		return "download"
	}
	return name
}

// Saver hands downloaded content to the user
type Saver interface {
	// SaveURL saves the resource behind url under fileName
	SaveURL(ctx context.Context, url, fileName string) error
	// SaveBytes saves data under fileName
	SaveBytes(ctx context.Context, data []byte, fileName string) error
}

// DirSaver writes downloads into a directory
type DirSaver struct {
	dir    string
	client *http.Client
}

// NewDirSaver returns DirSaver. A nil client uses http.DefaultClient.
func NewDirSaver(dir string, client *http.Client) *DirSaver {
	if client == nil {
		client = http.DefaultClient
	}
	return &DirSaver{dir: dir, client: client}
}

func (s *DirSaver) SaveURL(ctx context.Context, url, fileName string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: status %d", url, resp.StatusCode)
	}

	return s.write(fileName, func(w io.Writer) error {
		_, err := io.Copy(w, resp.Body)
		return err
	})
}

func (s *DirSaver) SaveBytes(_ context.Context, data []byte, fileName string) error {
	return s.write(fileName, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// write creates the file atomically: a temp file in dir renamed into place.
func (s *DirSaver) write(fileName string, fill func(io.Writer) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := fill(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, safeFileName(fileName)))
}
