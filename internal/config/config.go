package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		flags := root.PersistentFlags()
		_ = viper.BindPFlag(KeyTransport, flags.Lookup("transport"))
		_ = viper.BindPFlag(KeyHost, flags.Lookup("host"))
		_ = viper.BindPFlag(KeyPort, flags.Lookup("port"))
		_ = viper.BindPFlag(KeyLogLevel, flags.Lookup("log-level"))
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func Subdomain() string  { return viper.GetString(KeySubdomain) }
func Email() string      { return viper.GetString(KeyEmail) }
func APIToken() string   { return viper.GetString(KeyAPIToken) }
func OAuthToken() string { return viper.GetString(KeyOAuthToken) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
func Transport() string  { return viper.GetString(KeyTransport) }
func Host() string       { return viper.GetString(KeyHost) }
func Port() int          { return viper.GetInt(KeyPort) }
