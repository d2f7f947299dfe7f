package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// App holds the process-level settings every binary shares.
type App struct {
	LogConfigFile   string        `mapstructure:"log_config_file"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Setup registers App defaults under prefix. An empty log config file
// selects the built-in logger config.
func Setup(v *viper.Viper, prefix string) {
	v.SetDefault(prefix+".log_config_file", "")
	v.SetDefault(prefix+".shutdown_timeout", "10s")
}

// EnvConfigFile names an optional YAML/JSON/TOML file layered under env vars.
const EnvConfigFile = "CONFIG_FILE"

func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	return v
}

// Load applies defaults through configure, reads CONFIG_FILE when set and
// unmarshals into c. Env vars (upstream.origin -> UPSTREAM_ORIGIN) win.
func Load[T any](c *T, configure func(v *viper.Viper)) (*T, error) {
	v := NewViper()

	configure(v)

	if file := os.Getenv(EnvConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", file)
		}
	}
	return c, v.Unmarshal(c)
}
