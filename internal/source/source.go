// Package source works out which service manager controls services on this
// host and how to invoke it.
package source

import (
	"strings"

	"github.com/gg3-devnet/gg3/pkg/model"
)

// Placeholder is replaced by the service name in argument templates.
const Placeholder = "{}"

type LookPathFunc func(file string) (string, error)

type manager struct {
	kind    model.ServiceManager
	binary  string
	restart []string
	status  []string
}

var managers = []manager{
	{model.ServiceManagerSystemd, "systemctl", []string{"restart", Placeholder}, []string{"status", Placeholder}},
	{model.ServiceManagerOpenRC, "rc-service", []string{Placeholder, "restart"}, []string{Placeholder, "status"}},
	{model.ServiceManagerSysV, "service", []string{Placeholder, "restart"}, []string{Placeholder, "status"}},
	{model.ServiceManagerLaunchd, "launchctl", []string{"kickstart", "-k", "system/" + Placeholder}, []string{"print", "system/" + Placeholder}},
}

// initManagers maps the name of PID 1 to the manager it implies.
var initManagers = map[string]model.ServiceManager{
	"systemd":     model.ServiceManagerSystemd,
	"openrc":      model.ServiceManagerOpenRC,
	"openrc-init": model.ServiceManagerOpenRC,
	"init":        model.ServiceManagerSysV,
	"launchd":     model.ServiceManagerLaunchd,
}

// ForManager returns the control templates for kind. Unknown kinds fall back
// to systemd. An empty binary keeps the manager's default.
func ForManager(kind model.ServiceManager, binary string) model.ServiceControl {
	m := managers[0]
	for _, cand := range managers {
		if cand.kind == kind {
			m = cand
			break
		}
	}
	if binary == "" {
		binary = m.binary
	}
	return model.ServiceControl{
		Manager: m.kind,
		Binary:  binary,
		Restart: m.restart,
		Status:  m.status,
	}
}

// Detect picks the service manager. The manager implied by the init process
// wins when its binary is installed; otherwise the first installed binary in
// systemctl, rc-service, service, launchctl order is used. With nothing
// installed it returns systemd so the invocation error names systemctl.
func Detect(lookPath LookPathFunc, initName string) model.ServiceControl {
	if kind, ok := initManagers[strings.TrimSpace(initName)]; ok {
		ctl := ForManager(kind, "")
		if _, err := lookPath(ctl.Binary); err == nil {
			return ctl
		}
	}
	for _, m := range managers {
		if _, err := lookPath(m.binary); err == nil {
			return ForManager(m.kind, "")
		}
	}
	return ForManager(model.ServiceManagerSystemd, "")
}

// Expand substitutes service into an argument template.
func Expand(template []string, service string) []string {
	out := make([]string, len(template))
	for i, arg := range template {
		out[i] = strings.ReplaceAll(arg, Placeholder, service)
	}
	return out
}
