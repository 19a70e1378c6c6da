// Package toolkit implements the actions behind each shell command. Every
// action reports its own failures on the console and returns them so the
// caller can log them; none of them is fatal to the shell.
package toolkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gg3-devnet/gg3/internal/config"
	"github.com/gg3-devnet/gg3/internal/execx"
	"github.com/gg3-devnet/gg3/internal/extract"
	"github.com/gg3-devnet/gg3/internal/output"
	"github.com/gg3-devnet/gg3/internal/source"
	"github.com/gg3-devnet/gg3/pkg/model"
)

type Toolkit struct {
	cfg       config.Config
	runner    execx.Runner
	out       output.Printer
	extractor extract.Extractor
	services  model.ServiceControl
	logger    *log.Logger
}

// New wires a toolkit. The service manager comes from cfg when pinned there,
// otherwise it is detected through runner.LookPath.
func New(cfg config.Config, runner execx.Runner, out output.Printer, logger *log.Logger) *Toolkit {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var services model.ServiceControl
	if cfg.Tools.ServiceManager != "" {
		services = source.ForManager(model.ServiceManager(cfg.Tools.ServiceManager), cfg.Tools.ServiceBinary)
	} else {
		services = source.Detect(runner.LookPath, source.InitName())
		if cfg.Tools.ServiceBinary != "" {
			services.Binary = cfg.Tools.ServiceBinary
		}
	}
	logger.Debug("service manager", "manager", services.Manager, "binary", services.Binary)

	return &Toolkit{
		cfg:       cfg,
		runner:    runner,
		out:       out,
		extractor: extract.New(cfg.Networking.Keywords...),
		services:  services,
		logger:    logger,
	}
}

// Execute runs the action named by c.
func (t *Toolkit) Execute(ctx context.Context, c model.Command) error {
	switch c.Option {
	case model.OptionPing:
		return t.Ping(ctx, c.Argument)
	case model.OptionDNS:
		return t.CheckDNS(ctx, c.Argument)
	case model.OptionRestart:
		return t.RestartService(ctx, c.Argument)
	case model.OptionStatus:
		return t.ServiceStatus(ctx, c.Argument)
	case model.OptionNmap:
		_, err := t.Scan(ctx, c.Argument)
		return err
	}
	return fmt.Errorf("no action for option %q", c.Option)
}

func (t *Toolkit) Ping(ctx context.Context, addr string) error {
	t.out.Section("NETWORKING", "Pinging", addr)
	t.out.Println()
	args := []string{"-c" + strconv.Itoa(t.cfg.Networking.PingCount), addr}
	return t.check("Ping", t.runner.Run(ctx, t.cfg.Tools.Ping, args...))
}

// CheckDNS queries the resolver and prints the Server/Address records found
// in its output. A non-zero resolver exit still has its output inspected.
func (t *Toolkit) CheckDNS(ctx context.Context, domain string) error {
	t.out.Section("NETWORKING", "Checking DNS for", domain)
	t.out.Println()

	raw, err := t.runner.Output(ctx, t.cfg.Tools.Nslookup, domain)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return t.report("DNS lookup", err)
		}
		t.logger.Debug("resolver exited non-zero", "domain", domain, "err", err)
	}

	records := t.extractor.Extract(string(raw))
	if len(records) == 0 {
		t.out.Warn("No matching " + strings.Join(t.extractor.Keywords, " or ") + " entries found.")
		return nil
	}
	for _, r := range records {
		t.out.Record(r)
	}
	return nil
}

func (t *Toolkit) RestartService(ctx context.Context, service string) error {
	t.out.Section("SERVICES", "Restarting", service)
	name := t.services.Binary
	args := source.Expand(t.services.Restart, service)
	if t.cfg.Services.UseSudo {
		name, args = t.cfg.Tools.Sudo, append([]string{name}, args...)
	}
	return t.check("Service restart", t.runner.Run(ctx, name, args...))
}

func (t *Toolkit) ServiceStatus(ctx context.Context, service string) error {
	t.out.Section("SERVICES", "Checking status of", service)
	return t.check("Service status", t.runner.Run(ctx, t.services.Binary, source.Expand(t.services.Status, service)...))
}

// ScanPath returns where the scan output for target is written. Path
// separators in target are replaced so the file stays inside the scan
// directory.
func (t *Toolkit) ScanPath(target string) string {
	name := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(target)
	sec := t.cfg.Security
	return filepath.Join(sec.ScanDir, sec.ScanPrefix+name+sec.ScanExt)
}

// Scan runs the scanner against target, echoing each output line to the
// console and writing it to the scan file as it arrives. The file is
// truncated first and closed on every path.
func (t *Toolkit) Scan(ctx context.Context, target string) (model.ScanSession, error) {
	t.out.Section("SECURITY", "Running nmap scan on", target)
	session := model.ScanSession{Target: target, Path: t.ScanPath(target)}

	f, err := os.Create(session.Path)
	if err != nil {
		return session, t.report("Nmap scan", err)
	}
	defer f.Close()

	args := append(append([]string{}, t.cfg.Security.NmapArgs...), target)
	err = t.runner.Stream(ctx, func(line string) error {
		t.out.Raw(line)
		session.Lines++
		if _, werr := f.WriteString(line); werr != nil {
			return fmt.Errorf("write %s: %w", session.Path, werr)
		}
		return nil
	}, t.cfg.Tools.Nmap, args...)
	if err := t.check("Nmap scan", err); err != nil {
		return session, err
	}
	if err := f.Close(); err != nil {
		return session, t.report("Nmap scan", err)
	}
	t.logger.Debug("scan saved", "target", target, "path", session.Path, "lines", session.Lines)
	return session, nil
}

// check reports err unless it is only a non-zero exit status, which the
// program has already explained on the terminal.
func (t *Toolkit) check(what string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		t.logger.Debug(strings.ToLower(what)+" exited non-zero", "code", exitErr.ExitCode())
		return nil
	}
	return t.report(what, err)
}

func (t *Toolkit) report(what string, err error) error {
	t.out.Failure(what, err)
	return fmt.Errorf("%s: %w", strings.ToLower(what), err)
}
