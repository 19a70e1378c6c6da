package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Tools holds the external binaries. Empty entries are resolved through PATH.
type Tools struct {
	Ping     string `yaml:"ping"`
	Nslookup string `yaml:"nslookup"`
	Sudo     string `yaml:"sudo"`
	Nmap     string `yaml:"nmap"`
	// ServiceManager is one of systemd, openrc, sysv, launchd; empty means detect.
	ServiceManager string `yaml:"service_manager"`
	ServiceBinary  string `yaml:"service_binary"`
}

type Networking struct {
	PingCount int      `yaml:"ping_count"`
	Keywords  []string `yaml:"dns_keywords"`
}

type Services struct {
	// UseSudo prefixes restarts with the sudo binary.
	UseSudo bool `yaml:"use_sudo"`
}

type Security struct {
	NmapArgs   []string `yaml:"nmap_args"`
	ScanDir    string   `yaml:"scan_dir"`
	ScanPrefix string   `yaml:"scan_prefix"`
	ScanExt    string   `yaml:"scan_ext"`
}

type Config struct {
	Tools      Tools      `yaml:"tools"`
	Networking Networking `yaml:"networking"`
	Services   Services   `yaml:"services"`
	Security   Security   `yaml:"security"`
	LogFile    string     `yaml:"log_file"`
	AuditLog   string     `yaml:"audit_log"`
	NoColor    bool       `yaml:"no_color"`
}

func Default() Config {
	return Config{
		Tools: Tools{
			Ping:     "ping",
			Nslookup: "nslookup",
			Sudo:     "sudo",
			Nmap:     "nmap",
		},
		Networking: Networking{
			PingCount: 5,
			Keywords:  []string{"Server", "Address"},
		},
		Services: Services{UseSudo: true},
		Security: Security{
			NmapArgs:   []string{"-v", "-A", "-T4"},
			ScanDir:    ".",
			ScanPrefix: "scan_",
			ScanExt:    ".txt",
		},
		LogFile: "gg3utils.log",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gg3/config.yaml, falling back to
// ~/.config/gg3/config.yaml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gg3", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error when
// the path was not given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Networking.PingCount < 1 {
		return fmt.Errorf("networking.ping_count must be positive, got %d", c.Networking.PingCount)
	}
	switch c.Tools.ServiceManager {
	case "", "systemd", "openrc", "sysv", "launchd":
	default:
		return fmt.Errorf("tools.service_manager %q is not one of systemd, openrc, sysv, launchd", c.Tools.ServiceManager)
	}
	if c.Security.ScanExt == "" && c.Security.ScanPrefix == "" {
		return errors.New("security.scan_prefix and security.scan_ext cannot both be empty")
	}
	return nil
}
