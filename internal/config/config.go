// Package config binds the CLI's flags and SLITHERLOOP_* environment
// variables through viper into a single Config, mirroring the
// viper.New() + explicit BindPFlag wiring cmd/aleutian uses for its own
// flag/env binding.
package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds every flag the count subcommands share.
type Config struct {
	Render   bool
	Verify   bool
	Stats    bool
	Workers  int
	LogLevel string
}

// Bind registers cmd's shared flags and returns a viper instance bound
// to them and to SLITHERLOOP_*-prefixed environment variables.
func Bind(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SLITHERLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.PersistentFlags().Bool("render", false, "stream each found solution's ASCII diagram to stdout")
	cmd.PersistentFlags().Bool("verify", false, "independently re-verify every found solution")
	cmd.PersistentFlags().Bool("stats", false, "print clue-region component sizes before counting")
	cmd.PersistentFlags().Int("workers", 1, "number of worker goroutines for the row-0 partitioned search")
	cmd.PersistentFlags().String("log-level", "info", "zerolog level: debug, info, warn, error")

	for _, name := range []string{"render", "verify", "stats", "workers", "log-level"} {
		_ = v.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}

	return v
}

// Load reads the bound flags/environment into a Config.
func Load(v *viper.Viper) Config {
	return Config{
		Render:   v.GetBool("render"),
		Verify:   v.GetBool("verify"),
		Stats:    v.GetBool("stats"),
		Workers:  v.GetInt("workers"),
		LogLevel: v.GetString("log-level"),
	}
}
