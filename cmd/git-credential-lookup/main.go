// Command git-credential-lookup is a read-only git credential helper answering "get" requests
// from a ~/.git-credentials style store.
//
// Configure it with:
//
//	git config --global credential.helper lookup
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/florianilch/git-credential-lookup/cmd/git-credential-lookup/commands"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx, os.Args, version)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "git-credential-lookup: %v\n", err)
		os.Exit(1)
	}
}
