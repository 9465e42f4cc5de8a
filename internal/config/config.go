// Package config loads zk settings from a .zk.yaml file, ZK_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared by the config file, the environment and flag bindings.
const (
	KeyDir       = "dir"
	KeyExt       = "ext"
	KeyRecursive = "recursive"
)

// Config holds the settings used to locate note files.
type Config struct {
	// Dir is the directory holding note files.
	Dir string
	// Ext is the note file extension, including the leading dot.
	Ext string
	// Recursive makes the audit descend into subdirectories.
	Recursive bool
}

// New returns a viper instance with zk defaults and environment binding.
// When file is non-empty it is used as the config file; otherwise .zk.yaml is
// searched in the working directory and then in $HOME.
func New(file string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyExt, ".md")
	v.SetDefault(KeyRecursive, true)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".zk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("ZK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and returns the resolved settings.
// A missing config file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Dir:       v.GetString(KeyDir),
		Ext:       v.GetString(KeyExt),
		Recursive: v.GetBool(KeyRecursive),
	}
	if cfg.Dir == "" {
		return Config{}, errors.New("config: dir must not be empty")
	}
	if !strings.HasPrefix(cfg.Ext, ".") || len(cfg.Ext) < 2 {
		return Config{}, fmt.Errorf("config: ext %q must start with a dot", cfg.Ext)
	}
	return cfg, nil
}
