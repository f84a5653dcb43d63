package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultAPIURL points at the hosted MATLAB service backing the magic square
// tool. Override with MAGIC_API_URL or the --api-url flag.
const DefaultAPIURL = "https://matlab-0j1h.onrender.com/mymagic/mymagic"

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		flags := root.PersistentFlags()
		for key, flag := range map[string]string{
			KeyAPIURL:     "api-url",
			KeyAPITimeout: "timeout",
			KeyLogLevel:   "log-level",
			KeyHost:       "host",
			KeyPort:       "port",
		} {
			if f := flags.Lookup(flag); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIURL, DefaultAPIURL)
	viper.SetDefault(KeyAPITimeout, 30*time.Second)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func APIURL() string            { return viper.GetString(KeyAPIURL) }
func APITimeout() time.Duration { return viper.GetDuration(KeyAPITimeout) }
func LogLevel() string          { return viper.GetString(KeyLogLevel) }
func Host() string              { return viper.GetString(KeyHost) }
func Port() int                 { return viper.GetInt(KeyPort) }
