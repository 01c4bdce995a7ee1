package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// BackendSettings selects and tunes the generation backend.
type BackendSettings struct {
	// Provider is "ollama" or "openai".
	Provider    string  `mapstructure:"provider"`
	Host        string  `mapstructure:"host"`
	APIKey      string  `mapstructure:"api-key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top-p"`
	MaxTokens   int     `mapstructure:"max-tokens"`
}

// StorageSettings locates the durable key-value store.
type StorageSettings struct {
	Dir       string `mapstructure:"dir"`
	Namespace string `mapstructure:"namespace"`
}

// ChatSettings tunes the conversational surface.
type ChatSettings struct {
	// GreetingDelay emulates the ancestor beginning to speak. Zero disables
	// the delay.
	GreetingDelay time.Duration `mapstructure:"greeting-delay"`
}

type Settings struct {
	Backend BackendSettings `mapstructure:"backend"`
	Storage StorageSettings `mapstructure:"storage"`
	Chat    ChatSettings    `mapstructure:"chat"`
}

// Load reads settings from ~/.kinecta/config.yaml (overridable with
// KINECTA_CONFIG), environment variables prefixed KINECTA_, and built-in
// defaults. A missing config file is not an error.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("backend.provider", "ollama")
	v.SetDefault("backend.host", "http://localhost:11434")
	v.SetDefault("backend.model", "qwen2.5:7b")
	v.SetDefault("backend.temperature", 0.8)
	v.SetDefault("backend.top-p", 0.9)
	v.SetDefault("backend.max-tokens", 500)
	v.SetDefault("storage.dir", defaultDataDir())
	v.SetDefault("storage.namespace", "kinecta")
	v.SetDefault("chat.greeting-delay", time.Second)

	v.SetEnvPrefix("KINECTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile := os.Getenv("KINECTA_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultDataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, pkgerrors.Wrap(err, "read config file")
			}
		}
		log.Debug().Msg("no config file found, using defaults")
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, pkgerrors.Wrap(err, "unmarshal settings")
	}
	return settings, nil
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".kinecta")
}
