package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ContentDir    string `env:"CONTENT_DIR" envDefault:"."`
	ContentSource string `env:"CONTENT_SOURCE"` // go-getter URL fetched into ContentDir before loading
	ContentStrict bool   `env:"CONTENT_STRICT" envDefault:"false"`

	BuildingFile   string `env:"CONTENT_BUILDING_FILE" envDefault:"building.json"`
	ResourcesFile  string `env:"CONTENT_RESOURCES_FILE" envDefault:"resources.json"`
	ComponentsFile string `env:"CONTENT_COMPONENTS_FILE" envDefault:"components.json"`
	FoodsFile      string `env:"CONTENT_FOODS_FILE" envDefault:"foods.json"`
	CropsFile      string `env:"CONTENT_CROPS_FILE" envDefault:"crops.json"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"content-registry"`
	Version     string `env:"VERSION" envDefault:"dev"`

	MetricsFile string `env:"METRICS_FILE"` // textfile-collector output written after loading, empty to skip
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolvePath returns file joined onto ContentDir unless file is already absolute.
func (c *Config) ResolvePath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.ContentDir, file)
}

// IsDevelopment reports whether the environment is a development one.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
