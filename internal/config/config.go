// Package config resolves dequewalk settings from flags, environment
// variables and an optional config file.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lucasgdosr/deque/v2/internal/logging"
	"github.com/lucasgdosr/deque/v2/internal/walk"
)

const (
	ConfigFileKey = "config-file"
	OrderKey      = "order"
	MaxDepthKey   = "max-depth"
	HiddenKey     = "hidden"
	DirsOnlyKey   = "dirs-only"
	LogLevelKey   = "log-level"

	// EnvPrefix namespaces environment overrides, e.g. DEQUEWALK_MAX_DEPTH.
	EnvPrefix = "dequewalk"
)

type Config struct {
	Walk     walk.Config
	LogLevel string
}

// BuildFlagSet returns the flags understood by dequewalk with their defaults.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("dequewalk", pflag.ContinueOnError)
	fs.String(ConfigFileKey, "", "Path to a JSON, YAML or TOML file providing any of these flags")
	fs.String(OrderKey, string(walk.BreadthFirst), "Traversal order, bfs or dfs")
	fs.Int(MaxDepthKey, -1, "Maximum depth below the root to descend, negative for unlimited")
	fs.Bool(HiddenKey, false, "Include entries whose name starts with a dot")
	fs.Bool(DirsOnlyKey, false, "Only report directories")
	fs.String(LogLevelKey, logging.DefaultLevel, logging.LevelDescription)
	return fs
}

// BuildViper binds the parsed flag set and the environment, then reads the
// config file if one was named. Precedence is flag, env, file, default.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if file := v.GetString(ConfigFileKey); file != "" {
		v.SetConfigFile(os.ExpandEnv(file))
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
	}
	return v, nil
}

// GetConfig validates and converts the values held by v.
func GetConfig(v *viper.Viper) (Config, error) {
	order, err := walk.ParseOrder(v.GetString(OrderKey))
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid --%s", OrderKey)
	}

	level := v.GetString(LogLevelKey)
	if _, err := logging.ParseLevel(level); err != nil {
		return Config{}, errors.Wrapf(err, "invalid --%s", LogLevelKey)
	}

	return Config{
		Walk: walk.Config{
			Order:    order,
			MaxDepth: v.GetInt(MaxDepthKey),
			Hidden:   v.GetBool(HiddenKey),
			DirsOnly: v.GetBool(DirsOnlyKey),
		},
		LogLevel: level,
	}, nil
}
