//go:build linux || darwin || freebsd

package main

import (
	"github.com/gg3-devnet/gg3/internal/app"
)

var (
	version   = ""
	commit    = ""
	buildDate = ""
)

// go build -ldflags "-X main.version=v0.2.0 -X main.commit=$(git rev-parse --short HEAD) -X 'main.buildDate=$(date +%Y-%m-%d)'" -o gg3 ./cmd/gg3

func main() {
	app.SetVersionBuildCommitString(version, commit, buildDate)
	app.Execute()
}
