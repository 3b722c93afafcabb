// Package config loads ContentCrafty settings through viper. Values come
// from contentcrafty.yaml, CONTENTCRAFTY_* environment variables and bound
// command-line flags, in viper's usual precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/adarshpam3/contentcrafty-sub000/core/convert"
)

// Keys understood by Load.
const (
	KeyDBPath        = "db_path"
	KeyOutputDir     = "output_dir"
	KeyPolicy        = "policy"
	KeySanitize      = "sanitize"
	KeyLogLevel      = "log_level"
	KeyHTTPTimeout   = "http.timeout"
	KeyHTTPUserAgent = "http.user_agent"
)

// Config holds resolved settings.
type Config struct {
	DBPath    string
	OutputDir string
	Policy    convert.Policy
	Sanitize  bool
	LogLevel  string
	HTTP      HTTPConfig
}

// HTTPConfig holds settings for fetching remote markup.
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDBPath, defaultDBPath())
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyPolicy, convert.PolicyRecursive.String())
	v.SetDefault(KeySanitize, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyHTTPTimeout, 30*time.Second)
	v.SetDefault(KeyHTTPUserAgent, "ContentCrafty/1.0")
}

// Init points v at the config file and environment. An explicit cfgFile
// wins over the search path. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("contentcrafty")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "contentcrafty"))
		}
	}

	v.SetEnvPrefix("CONTENTCRAFTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) (Config, error) {
	policy, err := convert.ParsePolicy(v.GetString(KeyPolicy))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		DBPath:    v.GetString(KeyDBPath),
		OutputDir: v.GetString(KeyOutputDir),
		Policy:    policy,
		Sanitize:  v.GetBool(KeySanitize),
		LogLevel:  v.GetString(KeyLogLevel),
		HTTP: HTTPConfig{
			Timeout:   v.GetDuration(KeyHTTPTimeout),
			UserAgent: v.GetString(KeyHTTPUserAgent),
		},
	}
	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyDBPath)
	}
	if cfg.HTTP.Timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", KeyHTTPTimeout)
	}
	return cfg, nil
}

func defaultDBPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "contentcrafty", "contentcrafty.db")
	}
	return "contentcrafty.db"
}
