package envconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

const defaultBaseURL = "https://api.deepseek.com"

type deepSeekEnv struct {
	APIURL   string `env:"DEEPSEEK_API_URL"`
	BaseURL  string `env:"DEEPSEEK_BASE_URL"`
	APIKey   string `env:"DEEPSEEK_API_KEY"`
	Model    string `env:"DEEPSEEK_MODEL" envDefault:"deepseek-chat"`
	Endpoint string `env:"DEEPSEEK_ENDPOINT" envDefault:"/api/deepseek"`
}

type deepSeek struct {
	raw deepSeekEnv
}

func NewDeepSeekConfig() (*deepSeek, error) {
	var raw deepSeekEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &deepSeek{raw: raw}, nil
}

// BaseURL returns the upstream provider base URL without a trailing slash.
// DEEPSEEK_API_URL wins over DEEPSEEK_BASE_URL.
func (cfg *deepSeek) BaseURL() string {
	u := cfg.raw.APIURL
	if u == "" {
		u = cfg.raw.BaseURL
	}
	if u == "" {
		u = defaultBaseURL
	}
	return strings.TrimRight(u, "/")
}

func (cfg *deepSeek) APIKey() string { return strings.TrimSpace(cfg.raw.APIKey) }
func (cfg *deepSeek) HasKey() bool   { return cfg.APIKey() != "" }
func (cfg *deepSeek) Model() string  { return cfg.raw.Model }

// Endpoint is the path the diagnosis client falls back to when no key is
// held locally. A relative path routes through this service's own proxy.
func (cfg *deepSeek) Endpoint() string { return cfg.raw.Endpoint }
