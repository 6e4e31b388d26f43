// Package config holds the runtime configuration of the mock server. Defaults
// are applied through struct tags so a bare binary starts a usable instance.
package config

import (
	"time"

	"github.com/creasty/defaults"
)

type Configuration struct {
	Server Server
	Auth   Auth
	Seed   Seed
}

type Server struct {
	HTTPPort   int    `default:"8080"`
	ServerMode string `default:"dev"`
}

// Auth carries the stub OAuth credentials. Every value has a default because
// the server exists for integration tests, not for protecting anything.
type Auth struct {
	DeveloperToken  string        `default:"test-developer-token"`
	ClientID        string        `default:"test-client-id"`
	ClientSecret    string        `default:"test-client-secret"`
	SigningKey      string        `default:"insecure-local-signing-key"`
	AccessTokenTTL  time.Duration `default:"1h"`
	RefreshTokenTTL time.Duration `default:"720h"`
}

// Seed controls the synthetic dataset generated at startup.
type Seed struct {
	Customers            int   `default:"3"`
	CampaignsPerCustomer int   `default:"5"`
	AdGroupsPerCampaign  int   `default:"3"`
	AdsPerAdGroup        int   `default:"2"`
	MetricsDays          int   `default:"90"`
	NumWorkers           int   `default:"3"`
	RandomSeed           int64 `default:"42"`
}

func NewConfigurationWithOptionsAndDefaults() *Configuration {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}
