package shell

import (
	"fmt"
	"strings"

	"github.com/gg3-devnet/gg3/pkg/model"
)

type InputKind int

const (
	InputBlank InputKind = iota
	InputExit
	InputHelp
	InputRun
)

// Input is one parsed line of shell input. Commands is only set for InputRun
// and is ordered by the subcommand's option order, not by typing order.
type Input struct {
	Kind     InputKind
	Commands []model.Command
}

// ParseError is returned for any line that is not a valid command.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command %q: %s", e.Line, e.Reason)
}

// options lists, per subcommand, the options it accepts in execution order.
var options = map[model.Subcommand][]model.Option{
	model.SubcommandNetworking: {model.OptionPing, model.OptionDNS},
	model.SubcommandServices:   {model.OptionRestart, model.OptionStatus},
	model.SubcommandSecurity:   {model.OptionNmap},
}

var (
	exitWords = []string{"exit", "quit"}
	helpWords = []string{"help", "menu"}
)

// Parse resolves one line of input. Options take a value either as the next
// token or after "=". A repeated option keeps its last value.
func Parse(line string) (Input, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Input{Kind: InputBlank}, nil
	case matchesAny(trimmed, exitWords):
		return Input{Kind: InputExit}, nil
	case matchesAny(trimmed, helpWords):
		return Input{Kind: InputHelp}, nil
	}

	fail := func(format string, args ...any) (Input, error) {
		return Input{}, &ParseError{Line: trimmed, Reason: fmt.Sprintf(format, args...)}
	}

	tokens := strings.Fields(trimmed)
	sub := model.Subcommand(tokens[0])
	allowed, ok := options[sub]
	if !ok {
		return fail("unknown command %q", tokens[0])
	}

	values := map[model.Option]string{}
	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "--") || len(tok) == 2 {
			return fail("unexpected argument %q", tok)
		}
		name, value, inline := strings.Cut(tok[2:], "=")
		opt := model.Option(name)
		if !accepts(allowed, opt) {
			return fail("%s does not accept --%s", sub, name)
		}
		if !inline {
			if i+1 >= len(tokens) || strings.HasPrefix(tokens[i+1], "-") {
				return fail("--%s expects one argument", name)
			}
			i++
			value = tokens[i]
		}
		if value == "" {
			return fail("--%s expects one argument", name)
		}
		values[opt] = value
	}
	if len(values) == 0 {
		return fail("%s needs one of %s", sub, flagList(allowed))
	}

	in := Input{Kind: InputRun}
	for _, opt := range allowed {
		if v, ok := values[opt]; ok {
			in.Commands = append(in.Commands, model.Command{Subcommand: sub, Option: opt, Argument: v})
		}
	}
	return in, nil
}

// ParseArgs parses an already split command line, as given to the one-shot
// subcommands.
func ParseArgs(sub model.Subcommand, args []string) ([]model.Command, error) {
	in, err := Parse(string(sub) + " " + strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	return in.Commands, nil
}

func matchesAny(s string, words []string) bool {
	for _, w := range words {
		if strings.EqualFold(s, w) {
			return true
		}
	}
	return false
}

func accepts(allowed []model.Option, opt model.Option) bool {
	for _, a := range allowed {
		if a == opt {
			return true
		}
	}
	return false
}

func flagList(opts []model.Option) string {
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = "--" + string(o)
	}
	return strings.Join(names, ", ")
}

var subcommandOrder = []model.Subcommand{
	model.SubcommandNetworking,
	model.SubcommandServices,
	model.SubcommandSecurity,
}

var optionHelp = map[model.Option]string{
	model.OptionPing:    "ping an IP address",
	model.OptionDNS:     "check DNS resolution for a domain",
	model.OptionRestart: "restart a service",
	model.OptionStatus:  "check service status",
	model.OptionNmap:    "run a basic nmap scan",
}

// Subcommands returns the command groups in menu order.
func Subcommands() []model.Subcommand {
	return append([]model.Subcommand(nil), subcommandOrder...)
}

// Options returns the options sub accepts, in execution order.
func Options(sub model.Subcommand) []model.Option {
	return append([]model.Option(nil), options[sub]...)
}

func OptionHelp(opt model.Option) string {
	return optionHelp[opt]
}
