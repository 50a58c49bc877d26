package config

import "testing"

func TestLoadServerRequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	if _, err := LoadServer(); err == nil {
		t.Fatal("expected error without POSTGRES_DSN")
	}
}

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/forge")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.StartingGold != 30000 {
		t.Fatalf("StartingGold = %d, want 30000", cfg.StartingGold)
	}
	if cfg.ChanceRollCostGold != 20000 {
		t.Fatalf("ChanceRollCostGold = %d, want 20000", cfg.ChanceRollCostGold)
	}
	if cfg.TimestampToleranceMS != 5000 {
		t.Fatalf("TimestampToleranceMS = %d, want 5000", cfg.TimestampToleranceMS)
	}
}

func TestLoadServerOverrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/forge")
	t.Setenv("STARTING_GOLD", "500")
	t.Setenv("RAND_SEED", "42")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.StartingGold != 500 || cfg.RandSeed != 42 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}
