package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{
			Host:   "localhost",
			DBName: "mindchat",
		},
		Server:   ServerConfig{Port: 8080},
		Realtime: RealtimeConfig{Port: 8081},
		Authentication: AuthenticationConfig{
			Paseto: PasetoConfig{
				LocalKeyHex: strings.Repeat("ab", 32),
				Issuer:      "mindchat",
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "database.host",
		},
		{
			name:    "missing database name",
			mutate:  func(c *Config) { c.Database.DBName = "" },
			wantErr: "database.dbname",
		},
		{
			name:    "missing server port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "missing realtime port",
			mutate:  func(c *Config) { c.Realtime.Port = 0 },
			wantErr: "realtime.port",
		},
		{
			name:    "realtime port collides with server port",
			mutate:  func(c *Config) { c.Realtime.Port = c.Server.Port },
			wantErr: "must differ",
		},
		{
			name:    "missing paseto key",
			mutate:  func(c *Config) { c.Authentication.Paseto.LocalKeyHex = "" },
			wantErr: "local_key_hex",
		},
		{
			name:    "missing paseto issuer",
			mutate:  func(c *Config) { c.Authentication.Paseto.Issuer = "" },
			wantErr: "issuer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
