// Command mdsite builds a static website from a directory of Markdown pages.
package main

import (
	"context"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}
