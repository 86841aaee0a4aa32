package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	ConfigFile string `long:"config" env:"CONFIG_FILE" description:"Optional YAML file providing host and port"`
	Host       string `long:"host" env:"HOST" description:"Bind address (default: 127.0.0.1)"`
	Port       string `long:"port" env:"PORT" description:"Bind port (default: 8080)"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load resolves configuration from defaults, the optional YAML file,
// environment variables and command-line flags, in increasing precedence.
// It returns nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	var file fileCfg
	if raw.ConfigFile != "" {
		loaded, err := loadFile(raw.ConfigFile)
		if err != nil {
			return nil, err
		}
		file = *loaded
	}

	port := cmp.Or(file.Port, DefaultPort)
	if raw.Port != "" {
		p, err := strconv.Atoi(raw.Port)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", raw.Port, err)
		}
		port = p
	}

	cfg := &Cfg{
		Host:    cmp.Or(raw.Host, file.Host, DefaultHost),
		Port:    port,
		Debug:   raw.Debug,
		Version: GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string) (*fileCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file fileCfg
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &file, nil
}

func validate(cfg *Cfg) error {
	if cfg.Host == "" {
		return fmt.Errorf("host is required")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	return nil
}
