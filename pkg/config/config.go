package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	STT    STTConfig
	NER    NERConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int           `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	ProcessTimeout  time.Duration `envconfig:"SERVER_PROCESS_TIMEOUT" default:"10m"`
}

// UploadConfig holds upload validation and storage configuration
type UploadConfig struct {
	Folder            string   `envconfig:"UPLOAD_FOLDER" default:"uploads"`
	MaxFileSizeBytes  int64    `envconfig:"MAX_FILE_SIZE" default:"104857600"`
	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:"mp3,wav,m4a,ogg,flac"`
}

// STTConfig holds speech-to-text engine configuration
type STTConfig struct {
	Engine           string        `envconfig:"STT_ENGINE" default:"whisper"`
	WhisperURL       string        `envconfig:"WHISPER_URL" default:"http://localhost:9000"`
	WhisperModelSize string        `envconfig:"WHISPER_MODEL_SIZE" default:"base"`
	RequestTimeout   time.Duration `envconfig:"STT_REQUEST_TIMEOUT" default:"5m"`
	AssemblyAPIKey   string        `envconfig:"ASSEMBLYAI_API_KEY"`
}

// NERConfig holds named-entity recognizer configuration
type NERConfig struct {
	URL            string        `envconfig:"NER_URL" default:"http://localhost:9001"`
	RequestTimeout time.Duration `envconfig:"NER_REQUEST_TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.STT.Engine {
	case "whisper":
		if c.STT.WhisperURL == "" {
			return fmt.Errorf("WHISPER_URL is required when STT_ENGINE=whisper")
		}
	case "assemblyai":
		if c.STT.AssemblyAPIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when STT_ENGINE=assemblyai")
		}
	default:
		return fmt.Errorf("unsupported STT_ENGINE %q", c.STT.Engine)
	}
	if c.Upload.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}
	return nil
}

// GetServerAddr returns the server listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
