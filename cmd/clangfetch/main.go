// Command clangfetch downloads Chromium's clang update script at a given
// revision. It is meant to run as a gclient hook.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], defaultDeps()))
}
