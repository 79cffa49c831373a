package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit    string        `yaml:"git_commit" envconfig:"BCAT_GIT_COMMIT"`
	GitTag       string        `yaml:"git_tag" envconfig:"BCAT_GIT_TAG"`
	BuildTime    string        `yaml:"build_time" envconfig:"BCAT_BUILD_TIME"`
	IsProduction bool          `yaml:"is_production" envconfig:"BCAT_IS_PRODUCTION"`
	LogLevel     zapcore.Level `yaml:"log_level" envconfig:"BCAT_LOG_LEVEL"`
	LogFolder    string        `yaml:"log_folder" envconfig:"BCAT_LOG_FOLDER"`
	LogMaxSize   int           `yaml:"log_max_size" envconfig:"BCAT_LOG_MAX_SIZE"`
	Catalog      CatalogConfig `yaml:"catalog"`
}

// CatalogConfig groups the settings of the book catalog itself.
type CatalogConfig struct {
	Capacity     int     `yaml:"capacity" envconfig:"BCAT_CATALOG_CAPACITY"`
	PriceEpsilon float64 `yaml:"price_epsilon" envconfig:"BCAT_CATALOG_PRICE_EPSILON"`
	FilePath     string  `yaml:"filepath" envconfig:"BCAT_CATALOG_FILE_PATH"`
}

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &Config{}
	yd := yaml.NewDecoder(file)
	err = yd.Decode(cfg)

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environments variables and overrides the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig sets up default values for non provided parameters
// and configures build tags values to be used if provided.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(config.LogFolder) == 0 {
		config.LogFolder = "logs"
	}

	if config.LogMaxSize <= 0 {
		config.LogMaxSize = 10
	}

	if config.Catalog.Capacity <= 0 {
		return errors.New("make sure to set a positive catalog capacity in configuration file")
	}

	if len(config.Catalog.FilePath) == 0 {
		return errors.New("make sure to set a valid catalog file path in configuration file")
	}

	if config.Catalog.PriceEpsilon <= 0 {
		config.Catalog.PriceEpsilon = DefaultPriceEpsilon
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(gitCommit, gitTag, buildTime string) (*Config, error) {
	// Setup the yaml configuration from file.
	config, err := LoadConfigFile("./config.yml")
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration.
	err = godotenv.Load("./config.env")
	if err != nil {
		return config, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `BCAT`.
	err = LoadConfigEnvs("BCAT", config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
