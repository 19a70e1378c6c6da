package execx

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Call records one invocation made through a Fake.
type Call struct {
	Mode string // "run", "output" or "stream"
	Name string
	Args []string
}

func (c Call) String() string {
	return strings.TrimSpace(c.Mode + " " + c.Name + " " + strings.Join(c.Args, " "))
}

// Fake is a Runner that records calls instead of starting processes.
// Outputs and Streams are keyed by program name.
type Fake struct {
	mu      sync.Mutex
	Calls   []Call
	Outputs map[string]string
	Streams map[string][]string
	Errors  map[string]error
	Missing map[string]bool
}

func (f *Fake) record(mode, name string, args []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Mode: mode, Name: name, Args: append([]string(nil), args...)})
	return f.Errors[name]
}

func (f *Fake) Run(_ context.Context, name string, args ...string) error {
	return f.record("run", name, args)
}

func (f *Fake) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	if err := f.record("output", name, args); err != nil {
		return nil, err
	}
	return []byte(f.Outputs[name]), nil
}

func (f *Fake) Stream(ctx context.Context, fn LineFunc, name string, args ...string) error {
	if err := f.record("stream", name, args); err != nil {
		return err
	}
	for _, line := range f.Streams[name] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fake) LookPath(file string) (string, error) {
	if f.Missing[file] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
	}
	return "/usr/bin/" + file, nil
}

// Invocations returns the recorded calls in their String form.
func (f *Fake) Invocations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.String()
	}
	return out
}
