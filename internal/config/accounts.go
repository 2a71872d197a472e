package config

import "os"

const (
	EnvAccountsSeedUsername = "DRISHTI_ACCOUNTS_SEED_USERNAME"
	EnvAccountsSeedPassword = "DRISHTI_ACCOUNTS_SEED_PASSWORD"
)

// AccountsConfig controls the seeded demo reviewer account.
type AccountsConfig struct {
	SeedUsername string `toml:"seed_username"`
	SeedPassword string `toml:"seed_password"`
}

// Finalize applies defaults and environment variable overrides.
func (c *AccountsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AccountsConfig) Merge(overlay *AccountsConfig) {
	if overlay.SeedUsername != "" {
		c.SeedUsername = overlay.SeedUsername
	}
	if overlay.SeedPassword != "" {
		c.SeedPassword = overlay.SeedPassword
	}
}

func (c *AccountsConfig) loadDefaults() {
	if c.SeedUsername == "" {
		c.SeedUsername = "admin"
	}
	if c.SeedPassword == "" {
		c.SeedPassword = "password123"
	}
}

func (c *AccountsConfig) loadEnv() {
	if v := os.Getenv(EnvAccountsSeedUsername); v != "" {
		c.SeedUsername = v
	}
	if v := os.Getenv(EnvAccountsSeedPassword); v != "" {
		c.SeedPassword = v
	}
}
