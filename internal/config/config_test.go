package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("got Port %d, want 8080", cfg.Port)
	}
	if cfg.WarID != 801 {
		t.Fatalf("got WarID %d, want 801", cfg.WarID)
	}
	if cfg.WarStart != "2024-01-23T12:05:13Z" {
		t.Fatalf("got WarStart %q", cfg.WarStart)
	}
	if cfg.DataDir != "" {
		t.Fatalf("got DataDir %q, want empty", cfg.DataDir)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DARKFLUID_PORT", "9090")
	t.Setenv("DARKFLUID_DATA_DIR", "/srv/darkfluid")
	t.Setenv("DARKFLUID_WAR_ID", "802")
	t.Setenv("DARKFLUID_WAR_START", "2025-06-01T00:00:00Z")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("got Port %d, want 9090", cfg.Port)
	}
	if cfg.DataDir != "/srv/darkfluid" {
		t.Fatalf("got DataDir %q", cfg.DataDir)
	}
	if cfg.WarID != 802 {
		t.Fatalf("got WarID %d, want 802", cfg.WarID)
	}
	if cfg.WarStart != "2025-06-01T00:00:00Z" {
		t.Fatalf("got WarStart %q", cfg.WarStart)
	}
}

func TestFromEnvInvalidPort(t *testing.T) {
	t.Setenv("DARKFLUID_PORT", "not-a-port")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}
