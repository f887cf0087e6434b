package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/telkomindonesia/openapi-comments/internal/comment"
)

const EnvPrefix = "OPENAPI_COMMENTS"

type Config struct {
	Extension string `mapstructure:"extension"`
	LogLevel  string `mapstructure:"log-level"`
	Validate  bool   `mapstructure:"validate"`
}

// Load resolves the configuration from, in increasing priority: defaults,
// the optional config file, OPENAPI_COMMENTS_* environment variables and
// flags that were explicitly set.
func Load(cfgFile string, flags *pflag.FlagSet) (cfg Config, err error) {
	v := viper.New()
	v.SetDefault("extension", comment.DefaultExtension)
	v.SetDefault("log-level", "warn")
	v.SetDefault("validate", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err = v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("fail to read config file: %w", err)
		}
	}

	if flags != nil {
		for _, name := range []string{"extension", "log-level", "validate"} {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err = v.BindPFlag(name, f); err != nil {
				return cfg, fmt.Errorf("fail to bind flag '%s': %w", name, err)
			}
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("fail to decode config: %w", err)
	}
	if cfg.Extension == "" {
		return cfg, errors.New("extension name must not be empty")
	}
	if _, err = cfg.Level(); err != nil {
		return cfg, err
	}
	return
}

func (c Config) Level() (l slog.Level, err error) {
	if err = l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("fail to parse log level '%s': %w", c.LogLevel, err)
	}
	return
}

func (c Config) Logger(w io.Writer) *slog.Logger {
	l, err := c.Level()
	if err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: l,
	}))
}
