package config

import "time"

const (
	DefaultHTTPAddress     = ":8000"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultCSPAllowedCDN   = "https://cdn.jsdelivr.net"
	DefaultLogLevel        = "debug"
)

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Security: Security{
			CSPAllowedCDN: DefaultCSPAllowedCDN,
		},
	}
}
