package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("SEED_MENU", "")

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr=%q, want :8080", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel=%q, want info", cfg.LogLevel)
	}
	if cfg.KafkaBrokers != nil {
		t.Errorf("KafkaBrokers=%v, want nil", cfg.KafkaBrokers)
	}
	if !cfg.SeedMenu {
		t.Error("SeedMenu should default to true")
	}
}

func TestLoadLists(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,,")
	t.Setenv("CORS_ORIGINS", "https://admin.example.com")
	t.Setenv("SEED_MENU", "false")

	cfg := Load()
	if want := []string{"k1:9092", "k2:9092"}; !reflect.DeepEqual(cfg.KafkaBrokers, want) {
		t.Errorf("KafkaBrokers=%v, want %v", cfg.KafkaBrokers, want)
	}
	if want := []string{"https://admin.example.com"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins=%v, want %v", cfg.CORSOrigins, want)
	}
	if cfg.SeedMenu {
		t.Error("SeedMenu should be false")
	}
}
