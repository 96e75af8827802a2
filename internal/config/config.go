package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr               string        `yaml:"addr"`
	JWTSecret          string        `yaml:"jwt_secret"`
	APITimeout         time.Duration `yaml:"timeout"`
	DatabasePath       string        `yaml:"database_path"`
	TokenDuration      time.Duration `yaml:"token_duration"`
	AdminTokenDuration time.Duration `yaml:"admin_token_duration"`
	AdminUsername      string        `yaml:"admin_username"`
	AdminPassword      string        `yaml:"admin_password"`
	Dev                bool          `yaml:"dev"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:               getEnv("SAHELI_ADDR", ":3000"),
		JWTSecret:          getEnv("SAHELI_JWT_SECRET", "supersecretkey"),
		APITimeout:         15 * time.Second,
		DatabasePath:       getEnv("SAHELI_DATABASE_PATH", "saheli_connect.db"),
		TokenDuration:      7 * 24 * time.Hour,
		AdminTokenDuration: 24 * time.Hour,
		AdminUsername:      getEnv("SAHELI_ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("SAHELI_ADMIN_PASSWORD", ""),
		Dev:                os.Getenv("SAHELI_ENV") == "development",
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that are unsafe outside development.
func (c *Config) Validate() error {
	dev := c.Dev || os.Getenv("SAHELI_ENV") == "development"

	if !dev && c.JWTSecret == "supersecretkey" {
		return fmt.Errorf("jwt_secret must be changed from the default outside development")
	}
	if !dev && c.AdminPassword == "" {
		return fmt.Errorf("admin_password must be set outside development")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.AdminTokenDuration <= 0 {
		return fmt.Errorf("admin_token_duration must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
