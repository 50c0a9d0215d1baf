package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	aliasListFilename = "tnssync.ora"
	ldapOraFilename   = "ldap.ora"
	tnsNamesFilename  = "tnsnames.ora"
)

// Config holds all configuration for the application.
type Config struct {
	TnsAdmin string `env:"TNS_ADMIN"`
	Log      LogConfig
	Output   OutputConfig
	LDAP     LDAPConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `env:"TNSSYNC_LOG_LEVEL" envDefault:"info"`
	Format string `env:"TNSSYNC_LOG_FORMAT" envDefault:"auto"`
}

// OutputConfig holds tnsnames file configuration.
type OutputConfig struct {
	ManagedSection bool `env:"TNSSYNC_MANAGED_SECTION" envDefault:"false"`
}

// LDAPConfig holds directory connection configuration.
type LDAPConfig struct {
	ConnectTimeout time.Duration `env:"TNSSYNC_CONNECT_TIMEOUT" envDefault:"10s"`
	BindDN         string        `env:"TNSSYNC_BIND_DN"`
	BindPassword   string        `env:"TNSSYNC_BIND_PASSWORD"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	// Nested sections are parsed along with the root.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.TnsAdmin == "" {
		return fmt.Errorf("TNS_ADMIN is required (set the environment variable or pass --tns-admin)")
	}
	info, err := os.Stat(c.TnsAdmin)
	if err != nil {
		return fmt.Errorf("TNS_ADMIN directory %s is not accessible: %w", c.TnsAdmin, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("TNS_ADMIN %s is not a directory", c.TnsAdmin)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("TNSSYNC_LOG_LEVEL %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "auto", "terminal", "text", "json":
	default:
		return fmt.Errorf("TNSSYNC_LOG_FORMAT %q is not one of auto, terminal, text, json", c.Log.Format)
	}

	if c.LDAP.ConnectTimeout <= 0 {
		return fmt.Errorf("TNSSYNC_CONNECT_TIMEOUT must be positive, got %s", c.LDAP.ConnectTimeout)
	}
	if c.LDAP.BindDN == "" && c.LDAP.BindPassword != "" {
		return fmt.Errorf("TNSSYNC_BIND_PASSWORD is set without TNSSYNC_BIND_DN")
	}

	return nil
}

// AliasListPath returns the location of tnssync.ora.
func (c *Config) AliasListPath() string {
	return filepath.Join(c.TnsAdmin, aliasListFilename)
}

// LdapOraPath returns the location of ldap.ora.
func (c *Config) LdapOraPath() string {
	return filepath.Join(c.TnsAdmin, ldapOraFilename)
}

// TnsNamesPath returns the location of the managed tnsnames.ora.
func (c *Config) TnsNamesPath() string {
	return filepath.Join(c.TnsAdmin, tnsNamesFilename)
}
