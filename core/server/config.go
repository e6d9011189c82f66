package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrInvalidPort is returned when the configured port is outside the TCP range.
var ErrInvalidPort = errors.New("port must be between 1 and 65535")

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the listener binds to.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8000"`
	// Root is the directory served as "/". Empty means the working directory.
	Root string `mapstructure:"root" default:""`
	// Browse enables directory listings for folders without an index.html.
	Browse bool `mapstructure:"browse" default:"true"`
	// OpenBrowser opens the start page in the default browser once listening.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// StartPage is the path opened in the browser on startup.
	StartPage string `mapstructure:"start_page" default:"quick-order-test.html"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests get on interrupt.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Validate checks the port range.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// Address returns the host:port pair the listener binds to.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the browser-facing URL for the given path.
func (c Config) URL(path string) string {
	return "http://" + c.Address() + "/" + strings.TrimPrefix(path, "/")
}
