package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Accepted values of Config.Source and Config.Output.
const (
	SourceHTTP  = "http"
	SourceRedis = "redis"

	OutputTable = "table"
	OutputJSON  = "json"
)

// cities maps the preset names accepted by --city to their employee list endpoints.
var cities = map[string]string{
	"tallinn": "https://tallinn-jobapp.aw.ee/employee_list",
	"tartu":   "https://tartu-jobapp.aw.ee/employee_list",
}

// ErrInvalidConfig is returned by Validate when a config value is not accepted.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk configuration of the contacts binary. Flags override file values.
type Config struct {
	URL    string      `yaml:"url"`
	City   string      `yaml:"city"`
	Source string      `yaml:"source"`
	Output string      `yaml:"output"`
	HTTP   HTTPConfig  `yaml:"http"`
	Redis  RedisConfig `yaml:"redis"`
}

// HTTPConfig configures the http source.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	APIKey  string        `yaml:"api_key"`
}

// RedisConfig configures the redis source and the snapshot command.
type RedisConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// DefaultConfig function returns the config used when no file is given: the tallinn list over HTTP, printed as a table.
func DefaultConfig() Config {
	return Config{
		City:   "tallinn",
		Source: SourceHTTP,
		Output: OutputTable,
		HTTP:   HTTPConfig{Timeout: 30 * time.Second},
		Redis:  RedisConfig{Addr: "localhost:6379"},
	}
}

// LoadConfig reads path on top of the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ResolveURL returns the explicit URL when set, otherwise the endpoint of the configured city.
func (c Config) ResolveURL() (string, error) {
	if u := strings.TrimSpace(c.URL); u != "" {
		return u, nil
	}

	city := strings.ToLower(strings.TrimSpace(c.City))
	if u, ok := cities[city]; ok {
		return u, nil
	}

	return "", fmt.Errorf("%w: unknown city %q (known: %s)", ErrInvalidConfig, c.City, strings.Join(cityNames(), ", "))
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceHTTP, SourceRedis:
	default:
		return fmt.Errorf("%w: source must be %q or %q, got %q", ErrInvalidConfig, SourceHTTP, SourceRedis, c.Source)
	}

	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputTable, OutputJSON, c.Output)
	}

	if c.Source == SourceRedis && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("%w: redis.addr is required for the redis source", ErrInvalidConfig)
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("%w: http.timeout must not be negative", ErrInvalidConfig)
	}

	_, err := c.ResolveURL()
	return err
}

func cityNames() []string {
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
