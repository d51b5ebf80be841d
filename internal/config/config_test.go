package config_test

import (
	"clipshare/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredDB(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "clipshare")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "clipshare")
}

func TestLoad_Defaults(t *testing.T) {
	// Arrange
	setRequiredDB(t)

	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(70*1024*1024), cfg.Upload.VideoMaxSize)
	assert.Equal(t, "video-uploads", cfg.Upload.VideoFolder)
	assert.Equal(t, "social-share", cfg.Upload.ImageFolder)
	assert.Equal(t, "__session", cfg.Auth.SessionCookie)
	assert.Equal(t, 30*time.Second, cfg.Redis.ListTTL)
	assert.Equal(t, "https://res.cloudinary.com", cfg.Media.DeliveryBaseURL)
	assert.False(t, cfg.Media.Configured())
}

func TestLoad_MissingMediaCredentialsIsNotFatal(t *testing.T) {
	// Arrange
	setRequiredDB(t)
	t.Setenv("MEDIA_CLOUD_NAME", "demo")

	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.False(t, cfg.Media.Configured())
}

func TestLoad_MediaConfigured(t *testing.T) {
	// Arrange
	setRequiredDB(t)
	t.Setenv("MEDIA_CLOUD_NAME", "demo")
	t.Setenv("MEDIA_API_KEY", "key")
	t.Setenv("MEDIA_API_SECRET", "secret")

	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.True(t, cfg.Media.Configured())
}

func TestLoad_MissingDatabase(t *testing.T) {
	// Arrange
	setRequiredDB(t)
	require.NoError(t, os.Unsetenv("DB_HOST"))

	// Act
	_, err := config.Load()

	// Assert
	require.Error(t, err)
}

func TestLoadClient_Defaults(t *testing.T) {
	// Arrange
	t.Setenv("MEDIA_CLOUD_NAME", "demo")

	// Act
	cfg, err := config.LoadClient()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "demo", cfg.CloudName)
	assert.Equal(t, ".", cfg.DownloadDir)
	assert.Equal(t, int64(70*1024*1024), cfg.VideoMaxSize)
}

func TestLoadClient_DoesNotNeedDatabase(t *testing.T) {
	// Arrange
	t.Setenv("MEDIA_CLOUD_NAME", "demo")
	t.Setenv("CLIPSHARE_SESSION_TOKEN", "tok")
	t.Setenv("DB_HOST", "")
	require.NoError(t, os.Unsetenv("DB_HOST"))

	// Act
	cfg, err := config.LoadClient()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.SessionToken)
}

func TestLoadDotEnv(t *testing.T) {
	// Arrange
	setRequiredDB(t)
	t.Setenv("UPLOAD_VIDEO_FOLDER", "from-env")
	t.Setenv("MEDIA_CLOUD_NAME", "")
	require.NoError(t, os.Unsetenv("MEDIA_CLOUD_NAME"))
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("MEDIA_CLOUD_NAME=dotenv\nUPLOAD_VIDEO_FOLDER=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("MEDIA_CLOUD_NAME") })

	// Act
	err := config.LoadDotEnv(file, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "dotenv", cfg.Media.CloudName)
	assert.Equal(t, "from-env", cfg.Upload.VideoFolder)
}
