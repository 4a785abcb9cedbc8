package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort        string        `koanf:"http_port"`
	LogLevel        string        `koanf:"log_level"`
	JWTSecret       string        `koanf:"jwt_secret"`
	TokenTTL        time.Duration `koanf:"token_ttl"`
	OperatorWorkers int           `koanf:"operator_workers"`
}

// DefaultJWTSecret signs tokens when jwt_secret is not configured. It is only
// fit for local development.
const DefaultJWTSecret = "dev-secret"

// UsesDefaultSecret reports whether tokens are signed with DefaultJWTSecret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

// In all cases the default behavior should be for the docker compose setup
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"postgres_address":  "localhost",
		"postgres_port":     "5433",
		"postgres_db":       "postgres",
		"postgres_username": "postgres",
		"postgres_password": "testpassword",
		"http_port":         "9446",
		"log_level":         "info",
		"jwt_secret":        DefaultJWTSecret,
		"token_ttl":         "24h",
		"operator_workers":  4,
	}
}

// ProcessEnvironmentVariables loads defaults, then the YAML file named by
// CONFIG_FILE if set, then environment variables such as POSTGRES_ADDRESS.
func ProcessEnvironmentVariables() (*Config, error) {
	return load(os.Getenv("CONFIG_FILE"))
}

func load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configFile, err)
		}
	}

	known := defaults()
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := known[key]; !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	env := Config{}
	if err := k.Unmarshal("", &env); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if env.OperatorWorkers < 1 {
		return nil, fmt.Errorf("operator_workers must be at least 1, got %d", env.OperatorWorkers)
	}
	if env.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret must be set")
	}

	return &env, nil
}
