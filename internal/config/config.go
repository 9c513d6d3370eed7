// Package config reads pwdgen.toml and PWDGEN_* environment overrides.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/pwdgen/pwdgen/internal/clipboard"
	"github.com/pwdgen/pwdgen/internal/generator"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PWDGEN_DEFAULTS_LENGTH.
	EnvPrefix = "PWDGEN"

	// EnvConfigJSON holds a whole JSON document merged over the config.
	EnvConfigJSON = "PWDGEN_CONFIG_JSON"

	configName = "pwdgen"
	configType = "toml"
)

var validate = validator.New()

// ReadConfig from path/pwdgen.toml.
// An empty path searches ./etc/ and the user config dir and tolerates a missing file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
		v   = newViper()
	)

	if path != "" {
		v.AddConfigPath(path)
	} else {
		v.AddConfigPath("./etc/")

		if dir, dirErr := os.UserConfigDir(); dirErr == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}

		if path != "" {
			return Config{}, errors.Wrap(ErrConfigFileNotFound, path)
		}

		log.Debug().Msg("no config file found, using defaults")
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("config file loaded")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	// override it from env
	if JSONConfigEnv := os.Getenv(EnvConfigJSON); JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validateConfig(&c)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	return v
}

// setDefaults registers every key, AutomaticEnv only resolves known keys.
func setDefaults(v *viper.Viper) {
	req := generator.DefaultRequest()

	v.SetDefault("defaults.length", req.Length)
	v.SetDefault("defaults.mixedCase", req.MixedCase)
	v.SetDefault("defaults.includeNumbers", req.IncludeNumbers)
	v.SetDefault("defaults.includeSymbols", req.IncludeSymbols)

	v.SetDefault("clipboard.disabled", false)
	v.SetDefault("clipboard.platform", "")
	v.SetDefault("clipboard.timeout", clipboard.DefaultTimeout)

	v.SetDefault("metrics.textfile", "")

	v.SetDefault("log.logLevel", "warn")
	v.SetDefault("log.reportCaller", false)
	v.SetDefault("log.appName", "pwdgen")
	v.SetDefault("log.serviceName", "pwdgen")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useConsoleWriter", true)
	v.SetDefault("log.console.noColor", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./logs")

	for _, level := range []string{"error", "info", "trace", "warn"} {
		v.SetDefault("log.file."+level, level+".log")
		v.SetDefault("log.file."+level+"MaxSize", 10) //nolint:mnd
		v.SetDefault("log.file."+level+"MaxBackups", 3) //nolint:mnd
		v.SetDefault("log.file."+level+"MaxAge", 28) //nolint:mnd
	}
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func validateConfig(c *Config) error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	if c.Clipboard.Timeout < 0 {
		return errors.Wrap(ErrNegativeClipboardTimeout, ErrInvalidConfig.Error())
	}

	if c.Clipboard.Timeout == 0 {
		c.Clipboard.Timeout = clipboard.DefaultTimeout
	}

	return nil
}
