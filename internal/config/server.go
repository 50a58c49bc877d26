package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	StartingGold         int64 `env:"STARTING_GOLD" envDefault:"30000"`
	ResetGold            int64 `env:"RESET_GOLD" envDefault:"200000"`
	ChanceRollCostGold   int64 `env:"CHANCE_ROLL_COST_GOLD" envDefault:"20000"`
	FragmentRollCostGold int64 `env:"FRAGMENT_ROLL_COST_GOLD" envDefault:"20000"`
	FragmentRollYield    int64 `env:"FRAGMENT_ROLL_YIELD" envDefault:"10"`

	// Client timestamps further than this from server time are rejected.
	TimestampToleranceMS int64 `env:"TIMESTAMP_TOLERANCE_MS" envDefault:"5000"`

	// Seed for the outcome roller; 0 seeds from the clock.
	RandSeed int64 `env:"RAND_SEED" envDefault:"0"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
