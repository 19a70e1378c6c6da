//go:build !linux && !darwin && !freebsd

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"gg3 is only supported on Linux, macOS, and FreeBSD.\n\nIt drives ping, nslookup, nmap and the host service manager, which it expects to find on a Unix-like system.",
	)
	os.Exit(1)
}
