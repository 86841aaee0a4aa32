package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_FILE", "HOST", "PORT"} {
		t.Setenv(key, "")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Host != DefaultHost {
		t.Errorf("Expected host '%s', got '%s'", DefaultHost, cfg.Host)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Debug {
		t.Error("Expected debug to be disabled by default")
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Expected addr '127.0.0.1:8080', got '%s'", cfg.Addr())
	}
}

func TestLoadFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"--host", "0.0.0.0", "--port", "9090", "--debug"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got '%s'", cfg.Host)
	}
	if cfg.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yml")
	content := `
host: "10.0.0.1"
port: 7000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "10.0.0.1" || cfg.Port != 7000 {
		t.Errorf("Expected file values 10.0.0.1:7000, got %s", cfg.Addr())
	}

	t.Setenv("PORT", "7100")
	cfg, err = Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "10.0.0.1" || cfg.Port != 7100 {
		t.Errorf("Expected environment to override file port, got %s", cfg.Addr())
	}

	cfg, err = Load([]string{"--config", path, "--port", "7200", "--host", "localhost"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "localhost" || cfg.Port != 7200 {
		t.Errorf("Expected flags to override everything, got %s", cfg.Addr())
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric port", []string{"--port", "http"}},
		{"port too large", []string{"--port", "70000"}},
		{"port zero", []string{"--port", "0"}},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "missing.yml")}},
		{"unknown flag", []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args)
			if err == nil {
				t.Errorf("Expected error, got config %+v", cfg)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("host: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load([]string{"--config", path}); err == nil {
		t.Error("Expected YAML parse error")
	}
}
