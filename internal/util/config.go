package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const EnvKey = "DASHBOARD_ENV"

type Config struct {
	Port int        `json:"port"`
	Zoho ZohoConfig `json:"zoho"`
}

type ZohoConfig struct {
	ClientID          string        `json:"clientId"`
	ClientSecret      string        `json:"clientSecret"`
	RefreshToken      string        `json:"refreshToken"`
	OrganizationID    string        `json:"organizationId"`
	DataCenter        string        `json:"dc"`
	FetchLineItems    bool          `json:"fetchLineItems"`
	DetailConcurrency int           `json:"detailConcurrency"`
	MaxPages          int           `json:"maxPages"`
	HttpTimeout       time.Duration `json:"-"`
}

// IsConfigured reports whether every credential needed to reach the
// inventory API is present.
func (z ZohoConfig) IsConfigured() bool {
	return z.ClientID != "" &&
		z.ClientSecret != "" &&
		z.RefreshToken != "" &&
		z.OrganizationID != ""
}

func secretsFile() string {
	switch strings.ToLower(os.Getenv(EnvKey)) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

// LoadConfig reads the secrets file for the current environment, if there
// is one, and then lets environment variables (including a local .env)
// override it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port: 3009,
		Zoho: ZohoConfig{
			DataCenter:        "com",
			DetailConcurrency: 4,
			MaxPages:          10,
			HttpTimeout:       15 * time.Second,
		},
	}

	f, err := os.ReadFile(secretsFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not open secrets file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(f, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse secrets file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Zoho.ClientID, "ZOHO_CLIENT_ID")
	setString(&cfg.Zoho.ClientSecret, "ZOHO_CLIENT_SECRET")
	setString(&cfg.Zoho.RefreshToken, "ZOHO_REFRESH_TOKEN")
	setString(&cfg.Zoho.OrganizationID, "ZOHO_ORGANIZATION_ID")
	setString(&cfg.Zoho.DataCenter, "ZOHO_DC")

	if v := os.Getenv("ZOHO_FETCH_LINE_ITEMS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ZOHO_FETCH_LINE_ITEMS %q: %w", v, err)
		}
		cfg.Zoho.FetchLineItems = b
	}
	if err := setInt(&cfg.Zoho.DetailConcurrency, "ZOHO_DETAIL_CONCURRENCY"); err != nil {
		return err
	}
	if err := setInt(&cfg.Zoho.MaxPages, "ZOHO_MAX_PAGES"); err != nil {
		return err
	}
	if err := setInt(&cfg.Port, "PORT"); err != nil {
		return err
	}
	if v := os.Getenv("ZOHO_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ZOHO_HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.Zoho.HttpTimeout = d
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = i
	return nil
}
