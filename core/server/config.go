package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// Password is the shared secret required to access the API.
	Password string `mapstructure:"password" default:""`
	// ReadTimeoutSeconds bounds how long a request may take to be read.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30" validate:"min=0"`
}

// ReadTimeout returns the configured read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// IsProtected reports whether a password has been configured.
// Without one the API rejects every protected request.
func (c Config) IsProtected() bool {
	return c.Password != ""
}
