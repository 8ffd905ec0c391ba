package config

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddress   string        `mapstructure:"listen_address" validate:"required,listen_addr"`
	TemplatesDir    string        `mapstructure:"templates_dir" validate:"required,dir"`
	AdminAddress    string        `mapstructure:"admin_address" validate:"omitempty,listen_addr"`
	LogDebug        bool          `mapstructure:"log_debug"`
	ContentType     bool          `mapstructure:"content_type"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

func BindEnv(v *viper.Viper) {
	v.BindEnv("listen_address")
	v.BindEnv("templates_dir")
	v.BindEnv("admin_address")
	v.BindEnv("log_debug")
	v.BindEnv("content_type")
	v.BindEnv("shutdown_timeout")
}

// BindFlags registers the command line flags and binds them to their keys.
// Flags that are set take precedence over the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.StringP("listen-address", "l", "0.0.0.0:3000", "Address to listen on for error page requests.")
	flags.StringP("templates-dir", "p", "", "The path to the directory containing the template files.")
	flags.String("admin-address", "", "Address to serve health, version and metrics on. Disabled when empty.")
	flags.Bool("log-debug", false, "Enable debug logging.")
	flags.Bool("content-type", false, "Set the Content-Type of served templates from their extension.")
	flags.Duration("shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown.")

	v.BindPFlag("listen_address", flags.Lookup("listen-address"))
	v.BindPFlag("templates_dir", flags.Lookup("templates-dir"))
	v.BindPFlag("admin_address", flags.Lookup("admin-address"))
	v.BindPFlag("log_debug", flags.Lookup("log-debug"))
	v.BindPFlag("content_type", flags.Lookup("content-type"))
	v.BindPFlag("shutdown_timeout", flags.Lookup("shutdown-timeout"))
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen_address", "0.0.0.0:3000")
	v.SetDefault("admin_address", "")
	v.SetDefault("log_debug", false)
	v.SetDefault("content_type", false)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// Load reads the configuration from the command line arguments and the
// environment, and validates it. pflag.ErrHelp is returned as is when help
// was requested.
func Load(name string, args []string) (*Config, error) {
	v := viper.New()
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	BindFlags(v, flags)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	BindEnv(v)
	SetDefaults(v)

	cfg := &Config{}
	if err := v.UnmarshalExact(cfg); err != nil {
		return nil, err
	}
	if err := NewValidator().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
