// Package config wires environment variables, an optional .env file and
// command-line flags into a single viper-backed configuration surface.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zmanim/mcp/internal/validation"
)

// Init loads configuration sources in priority order: explicit flags on the
// root command, then environment variables, then defaults. A .env file in
// the working directory is loaded when present.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHTTPHost, "127.0.0.1")
	viper.SetDefault(KeyHTTPPort, 8080)
	viper.SetDefault(KeyCandleOffset, validation.DefaultCandleOffset)
}

func LogLevel() string                 { return viper.GetString(KeyLogLevel) }
func HTTPHost() string                 { return viper.GetString(KeyHTTPHost) }
func HTTPPort() int                    { return viper.GetInt(KeyHTTPPort) }
func DefaultCandleLightingOffset() int { return viper.GetInt(KeyCandleOffset) }
