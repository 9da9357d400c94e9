// Package config loads the application settings from a YAML file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// TokenEnv overrides the token file when set.
const TokenEnv = "LICHESS_TOKEN"

// ErrNoToken is returned when no API token is configured.
var ErrNoToken = errors.New("config: no lichess token configured")

var validate = validator.New()

// Config is the full application configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	UI    UIConfig    `yaml:"ui"`
	Log   LogConfig   `yaml:"log"`
	Cache CacheConfig `yaml:"cache"`
}

// APIConfig points at the game service.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	TokenFile string        `yaml:"token_file"`
}

// UIConfig controls window geometry and assets.
type UIConfig struct {
	SquareSize int     `yaml:"square_size" validate:"gte=40,lte=160"`
	PanelWidth int     `yaml:"panel_width" validate:"gte=240"`
	PieceScale float64 `yaml:"piece_scale" validate:"gte=0.5,lte=1"`
	AssetsDir  string  `yaml:"assets_dir"`
	TPS        int     `yaml:"tps" validate:"gte=1,lte=120"`
	// StartIndex is the game shown first; -1 resumes the last viewed game.
	StartIndex int `yaml:"start_index"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

// CacheConfig controls the offline game cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty means the user cache directory
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://lichess.org",
			Timeout:   10 * time.Second,
			TokenFile: "token.json",
		},
		UI: UIConfig{
			SquareSize: 100,
			PanelWidth: 600,
			PieceScale: 0.80,
			AssetsDir:  "assets",
			TPS:        30,
			StartIndex: -1,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Namespace())
		case "url":
			fmt.Fprintf(&details, "%s must be a URL", fe.Namespace())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", fe.Namespace(), fe.Param())
		default:
			fmt.Fprintf(&details, "%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}

// tokenFile is the on-disk token format.
type tokenFile struct {
	LichessToken string `json:"lichess_token"`
}

// Token returns the API token from the environment or the token file.
func (c *Config) Token() (string, error) {
	if tok := strings.TrimSpace(os.Getenv(TokenEnv)); tok != "" {
		return tok, nil
	}
	if c.API.TokenFile == "" {
		return "", ErrNoToken
	}

	data, err := os.ReadFile(c.API.TokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s not found", ErrNoToken, c.API.TokenFile)
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", fmt.Errorf("parse token file %s: %w", c.API.TokenFile, err)
	}
	if strings.TrimSpace(tf.LichessToken) == "" {
		return "", fmt.Errorf("%w: %s has no lichess_token", ErrNoToken, c.API.TokenFile)
	}
	return strings.TrimSpace(tf.LichessToken), nil
}

// SaveToken writes token to the configured token file.
func (c *Config) SaveToken(token string) error {
	if c.API.TokenFile == "" {
		return ErrNoToken
	}
	data, err := json.MarshalIndent(tokenFile{LichessToken: strings.TrimSpace(token)}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.API.TokenFile, data, 0600)
}
