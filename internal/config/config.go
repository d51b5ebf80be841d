package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Media    MediaConfig
	Upload   UploadConfig
	Auth     AuthConfig
	Redis    RedisConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host           string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"5m"`
	StaticDir      string        `envconfig:"SERVER_STATIC_DIR"`
}

// MediaConfig holds the media service credentials. They are not required,
// a missing value is reported by the affected endpoint.
type MediaConfig struct {
	CloudName       string        `envconfig:"MEDIA_CLOUD_NAME"`
	APIKey          string        `envconfig:"MEDIA_API_KEY"`
	APISecret       string        `envconfig:"MEDIA_API_SECRET"`
	APIBaseURL      string        `envconfig:"MEDIA_API_BASE_URL" default:"https://api.cloudinary.com"`
	DeliveryBaseURL string        `envconfig:"MEDIA_DELIVERY_BASE_URL" default:"https://res.cloudinary.com"`
	Timeout         time.Duration `envconfig:"MEDIA_TIMEOUT" default:"10m"`
}

// Configured reports whether every credential needed to call the media service is present.
func (m MediaConfig) Configured() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

type UploadConfig struct {
	VideoMaxSize int64  `envconfig:"UPLOAD_VIDEO_MAX_SIZE" default:"73400320"` // 70MB
	ImageMaxSize int64  `envconfig:"UPLOAD_IMAGE_MAX_SIZE" default:"10485760"` // 10MB
	VideoFolder  string `envconfig:"UPLOAD_VIDEO_FOLDER" default:"video-uploads"`
	ImageFolder  string `envconfig:"UPLOAD_IMAGE_FOLDER" default:"social-share"`
}

type AuthConfig struct {
	SessionCookie string `envconfig:"AUTH_SESSION_COOKIE" default:"__session"`
	SessionSecret string `envconfig:"AUTH_SESSION_SECRET"`
	PublicKeyPEM  string `envconfig:"AUTH_PUBLIC_KEY_PEM"`
	Issuer        string `envconfig:"AUTH_ISSUER"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	ListTTL  time.Duration `envconfig:"REDIS_LIST_TTL" default:"30s"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"MEDIA_ASSETS"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"media.assets.orphaned"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"orphan-reconciler"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// ClientConfig configures the command line client. It is loaded separately so the
// client never needs the server's database settings.
type ClientConfig struct {
	ServerURL       string        `envconfig:"CLIPSHARE_SERVER_URL" default:"http://localhost:8080"`
	SessionToken    string        `envconfig:"CLIPSHARE_SESSION_TOKEN"`
	CloudName       string        `envconfig:"MEDIA_CLOUD_NAME" required:"true"`
	DeliveryBaseURL string        `envconfig:"MEDIA_DELIVERY_BASE_URL" default:"https://res.cloudinary.com"`
	DownloadDir     string        `envconfig:"CLIPSHARE_DOWNLOAD_DIR" default:"."`
	VideoMaxSize    int64         `envconfig:"UPLOAD_VIDEO_MAX_SIZE" default:"73400320"`
	Timeout         time.Duration `envconfig:"CLIPSHARE_TIMEOUT" default:"10m"`
}

func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv copies the variables of the given files (default ".env") into the process
// environment. Variables already set win and missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
