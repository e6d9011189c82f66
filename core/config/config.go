package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"devserver/core/logger"
	"devserver/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment overrides (e.g. DEVSERVER_SERVER_PORT).
const EnvPrefix = "DEVSERVER"

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from defaults, an optional .env file in path,
// DEVSERVER_* environment variables and finally the command-line flags.
// flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	envPath := filepath.Join(path, ".env")

	// Ignore error if file doesn't exist; the .env file is optional.
	// Load never overwrites variables already set in the environment.
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DEVSERVER_SERVER_PORT -> server.port)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	root, err := resolveRoot(config.Server.Root)
	if err != nil {
		return nil, err
	}
	config.Server.Root = root

	if err := config.Server.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindFlags wires the CLI flags onto their configuration keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	if f := flags.Lookup("port"); f != nil {
		if err := v.BindPFlag("server.port", f); err != nil {
			return fmt.Errorf("failed to bind port flag: %w", err)
		}
	}

	// --no-browser is the negation of server.open_browser, so it cannot be bound directly.
	if f := flags.Lookup("no-browser"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("server.open_browser", false)
	}

	return nil
}

// resolveRoot turns the configured root into an absolute path, defaulting to
// the working directory.
func resolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %q: %w", root, err)
	}
	return abs, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
