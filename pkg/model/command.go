package model

type Subcommand string

const (
	SubcommandNetworking Subcommand = "networking"
	SubcommandServices   Subcommand = "services"
	SubcommandSecurity   Subcommand = "security"
)

type Option string

const (
	OptionPing    Option = "ping"
	OptionDNS     Option = "dns"
	OptionRestart Option = "restart"
	OptionStatus  Option = "status"
	OptionNmap    Option = "nmap"
)

// Command is one resolved action: a subcommand, one of its options and the
// option's free-text argument.
type Command struct {
	Subcommand Subcommand
	Option     Option
	Argument   string
}

func (c Command) String() string {
	return string(c.Subcommand) + " --" + string(c.Option) + " " + c.Argument
}
