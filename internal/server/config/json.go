package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mdrrmo4516/mobile2026/internal/flagx"
	"github.com/mdrrmo4516/mobile2026/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Duration fields
// accept both "30m" style strings and integer nanoseconds. Absent fields keep
// whatever value the Config already had.
type JsonConfig struct {
	HTTPAddr                    *string         `json:"http_addr"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	DBMaxOpenConns              *int            `json:"db_max_open_conns"`
	DBMaxIdleConns              *int            `json:"db_max_idle_conns"`
	DBConnMaxLifetime           *timex.Duration `json:"db_conn_max_lifetime"`
	DBAcquireTimeout            *timex.Duration `json:"db_acquire_timeout"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, into config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.DBMaxOpenConns != nil {
		config.DBMaxOpenConns = *c.DBMaxOpenConns
	}
	if c.DBMaxIdleConns != nil {
		config.DBMaxIdleConns = *c.DBMaxIdleConns
	}
	if c.DBConnMaxLifetime != nil {
		config.DBConnMaxLifetime = c.DBConnMaxLifetime.Duration
	}
	if c.DBAcquireTimeout != nil {
		config.DBAcquireTimeout = c.DBAcquireTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
