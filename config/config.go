package config

import (
	"fmt"
	"os"

	"github.com/reusedev/scribe-hub/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

// Init loads the yaml config file and overlays the Gemini credential from
// the environment. A missing file keeps the defaults; a malformed file or
// invalid config panics before the server starts.
func Init(filePath string) {
	GConfig = Default()
	data, err := os.ReadFile(filePath)
	if err == nil {
		if err := yaml.Unmarshal(data, GConfig); err != nil {
			panic(err)
		}
	}
	GConfig.APIKey = os.Getenv(consts.EnvGeminiAPIKey)
	if err := GConfig.Verify(); err != nil {
		panic(err)
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
	Gemini        `yaml:"gemini"`
}

type Gemini struct {
	APIKey string   `yaml:"-"` // env only, never from file
	Models []string `yaml:"models"`
}

func Default() *Config {
	return &Config{
		LogLevel:      "info",
		LogFile:       "logs/scribe-hub.log",
		LogMaxSize:    100,
		LogMaxBackups: 3,
		LogMaxAge:     28,
		Gemini: Gemini{
			Models: consts.DefaultModels,
		},
	}
}

func (c *Config) Verify() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("gemini model candidate list must not be empty")
	}
	return nil
}

func (c *Config) APIKeyConfigured() bool {
	return c != nil && c.APIKey != ""
}
