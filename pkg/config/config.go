package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/link/inventory-platform/pkg/database"
	"github.com/link/inventory-platform/pkg/tracing"
)

// Common holds the settings every service reads.
type Common struct {
	Environment string          `mapstructure:"environment"`
	Log         LogConfig       `mapstructure:"log"`
	HTTP        HTTPConfig      `mapstructure:"http"`
	DB          database.Config `mapstructure:"db"`
	App         AppConfig       `mapstructure:"app"`
	Tracing     tracing.Config  `mapstructure:"tracing"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type HTTPConfig struct {
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
}

type AppConfig struct {
	API struct {
		Key string `mapstructure:"key"`
	} `mapstructure:"api"`
}

// IsDevelopment reports whether console logging should be used.
func (c Common) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// Validate checks the settings without which a service must not start.
func (c Common) Validate() error {
	if strings.TrimSpace(c.App.API.Key) == "" {
		return errors.New("app.api.key must be set")
	}
	if c.HTTP.Port == "" {
		return errors.New("http.port must be set")
	}
	return nil
}

// CommonDefaults returns the defaults shared by both services.
func CommonDefaults(port, dbName string) map[string]any {
	return map[string]any{
		"environment":             "development",
		"log.level":               "info",
		"http.port":               port,
		"http.request-timeout":    30 * time.Second,
		"db.driver":               "postgres",
		"db.dsn":                  "",
		"db.host":                 "localhost",
		"db.port":                 "5432",
		"db.user":                 "postgres",
		"db.password":             "postgres",
		"db.name":                 dbName,
		"db.sslmode":              "disable",
		"db.max-open-conns":       25,
		"db.max-idle-conns":       5,
		"db.conn-max-lifetime":    5 * time.Minute,
		"app.api.key":             "",
		"tracing.enabled":         false,
		"tracing.jaeger-endpoint": tracing.DefaultJaegerEndpoint,
	}
}

// Load builds a viper instance for service. Values resolve in order: environment,
// config file, defaults. When path is empty, <service>.yaml is searched in the
// working directory, ./config and /etc/<service>; a missing file is not an error.
func Load(service, path string, defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(service)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/" + service)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Decode unmarshals the loaded settings into out.
func Decode(v *viper.Viper, out any) error {
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}
