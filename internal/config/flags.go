package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments (without the program name) into a
// partial StructuredConfig. Flags that are not passed stay zero so that they
// do not shadow other sources during the merge.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databasePath string
	var configPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var rateLimit int
	var corsOrigins string
	var trustProxy bool
	var cspCDN string
	var cspRelaxed bool
	var logLevel string

	fs := flag.NewFlagSet("idea-backlog", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databasePath, "d", "", "SQLite database file path")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client IP (0 disables)")
	fs.StringVar(&corsOrigins, "cors", "", "Comma-separated CORS allowed origins")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Take the client IP from X-Forwarded-For / X-Real-IP")
	fs.StringVar(&cspCDN, "csp-cdn", "", "Extra script/style source for Content-Security-Policy")
	fs.BoolVar(&cspRelaxed, "csp-relaxed", false, "Allow inline styles and drop form-action in Content-Security-Policy")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Path: databasePath,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
			RateLimit:          rateLimit,
			CORSAllowedOrigins: splitList(corsOrigins),
			TrustProxyHeaders:  trustProxy,
		},
		Security: Security{
			CSPAllowedCDN: cspCDN,
			CSPRelaxed:    cspRelaxed,
		},
		ConfigFilePath: configPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". An empty host means all interfaces; any other host
// must be "localhost" or a literal IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
