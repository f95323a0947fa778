package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 45 * time.Second
)

// Config for the OpenAI-compatible chat completions client. Zero values fall
// back to sane defaults; an empty APIKey falls back to OPENAI_API_KEY.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

func (c *Config) applyDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
