package model

type ServiceManager string

const (
	ServiceManagerSystemd ServiceManager = "systemd"
	ServiceManagerOpenRC  ServiceManager = "openrc"
	ServiceManagerSysV    ServiceManager = "sysv"
	ServiceManagerLaunchd ServiceManager = "launchd"
	ServiceManagerUnknown ServiceManager = "unknown"
)

// ServiceControl is the resolved binary and argument templates for the
// host's service manager.
type ServiceControl struct {
	Manager ServiceManager
	Binary  string
	Restart []string
	Status  []string
}
