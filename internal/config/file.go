package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors StructuredConfig for JSON and YAML files.
// Durations accept either Go duration strings ("30s") or integer nanoseconds.
type StructuredFileConfig struct {
	App struct {
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path" yaml:"path"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address" yaml:"http_address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		RateLimit          int      `json:"rate_limit" yaml:"rate_limit"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins"`
		TrustProxyHeaders  bool     `json:"trust_proxy_headers" yaml:"trust_proxy_headers"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Security struct {
		CSPAllowedCDN string `json:"csp_cdn" yaml:"csp_cdn"`
		CSPRelaxed    bool   `json:"csp_relaxed" yaml:"csp_relaxed"`
	} `json:"security,omitempty" yaml:"security,omitempty"`
}

// parseFile reads a config file, choosing the decoder by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: fileCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Path: fileCfg.Storage.DB.Path,
			},
		},
		Server: Server{
			HTTPAddress:        fileCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(fileCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(fileCfg.Server.ShutdownTimeout),
			RateLimit:          fileCfg.Server.RateLimit,
			CORSAllowedOrigins: fileCfg.Server.CORSAllowedOrigins,
			TrustProxyHeaders:  fileCfg.Server.TrustProxyHeaders,
		},
		Security: Security{
			CSPAllowedCDN: fileCfg.Security.CSPAllowedCDN,
			CSPRelaxed:    fileCfg.Security.CSPRelaxed,
		},
	}, nil
}

// Duration is a time.Duration that decodes from JSON/YAML strings or numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v interface{}) error {
	switch value := v.(type) {
	case nil:
		*d = 0
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case int:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
