package config

import (
	"reflect"
	"strings"

	"backend-doctor/core/database"
	"backend-doctor/core/logger"
	"backend-doctor/core/medusa"
	"backend-doctor/core/server"
	"backend-doctor/core/storage"
	"backend-doctor/feature/status"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the diagnostics API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the backend's file storage (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the backend database connection.
	Database database.Config `mapstructure:"database"`
	// Medusa holds the backend's own environment flags.
	Medusa medusa.Config `mapstructure:"medusa"`
	// Status holds configuration for the server status probe.
	Status status.Config `mapstructure:"status"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every 'mapstructure' key with its 'default'
// tag. Fields with an 'env' tag are also bound to that exact variable name, for
// variables that don't follow the nested naming (PORT, DISABLE_MEDUSA_ADMIN, ...).
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		if env := field.Tag.Get("env"); env != "" {
			_ = v.BindEnv(key, env)
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
