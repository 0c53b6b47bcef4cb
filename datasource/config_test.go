package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("DEFAULT_CITY", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DefaultCity != "Seoul" {
		t.Errorf("Expected default city Seoul, got %s", cfg.DefaultCity)
	}
	if cfg.OpenWeatherMap.Lang != "kr" {
		t.Errorf("Expected lang kr, got %s", cfg.OpenWeatherMap.Lang)
	}
	if cfg.OpenWeatherMap.Timeout() != 0 {
		t.Errorf("Expected no weather client timeout, got %v", cfg.OpenWeatherMap.Timeout())
	}
	if cfg.Geolocation.Timeout() != 5*time.Second {
		t.Errorf("Expected 5s geolocation timeout, got %v", cfg.Geolocation.Timeout())
	}
	if cfg.SessionMaxAge() != 24*time.Hour {
		t.Errorf("Expected 24h session age, got %v", cfg.SessionMaxAge())
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"openWeatherMap": {"apiKey": "from-file", "timeoutSeconds": 10},
		"defaultCity": "Busan",
		"timezone": "Asia/Seoul"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	t.Setenv("DEFAULT_CITY", "")
	t.Setenv("DASHBOARD_TIMEZONE", "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OpenWeatherMap.APIKey != "from-env" {
		t.Errorf("Expected env key to win, got %s", cfg.OpenWeatherMap.APIKey)
	}
	if cfg.OpenWeatherMap.Timeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", cfg.OpenWeatherMap.Timeout())
	}
	if cfg.OpenWeatherMap.BaseURL == "" {
		t.Error("Base URL default should survive a partial file")
	}
	if cfg.DefaultCity != "Busan" {
		t.Errorf("Expected Busan, got %s", cfg.DefaultCity)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location failed: %v", err)
	}
	if loc.String() != "Asia/Seoul" {
		t.Errorf("Expected Asia/Seoul, got %s", loc)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for malformed config")
	}
}

func TestConfigLocation_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "Mars/Olympus"
	if _, err := cfg.Location(); err == nil {
		t.Error("Expected an error for an unknown zone")
	}

	cfg.Timezone = ""
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Errorf("Expected time.Local for empty zone, got %v, %v", loc, err)
	}
}
