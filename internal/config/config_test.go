package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tools:
  nmap: /opt/nmap/bin/nmap
  service_manager: openrc
networking:
  ping_count: 2
security:
  nmap_args: ["-sV"]
audit_log: /tmp/gg3-audit.log
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tools.Nmap != "/opt/nmap/bin/nmap" || cfg.Tools.ServiceManager != "openrc" {
		t.Errorf("tools = %+v", cfg.Tools)
	}
	if cfg.Networking.PingCount != 2 {
		t.Errorf("ping_count = %d", cfg.Networking.PingCount)
	}
	if !reflect.DeepEqual(cfg.Security.NmapArgs, []string{"-sV"}) {
		t.Errorf("nmap_args = %q", cfg.Security.NmapArgs)
	}
	// untouched keys keep their defaults
	if cfg.Tools.Ping != "ping" || cfg.Security.ScanPrefix != "scan_" || !cfg.Services.UseSudo {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Networking.Keywords, []string{"Server", "Address"}) {
		t.Errorf("keywords = %q", cfg.Networking.Keywords)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadImplicitMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "tools: [",
		"zero ping count": "networking:\n  ping_count: 0\n",
		"bad manager":     "tools:\n  service_manager: upstart\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Error("Load() error = nil")
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, dir) || filepath.Base(got) != "config.yaml" {
		t.Errorf("DefaultPath() = %q", got)
	}
}
