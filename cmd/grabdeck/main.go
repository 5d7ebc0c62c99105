// Where: cli/cmd/grabdeck/main.go
// What: CLI entrypoint.
// Why: Execute launcher commands with configured dependencies.
package main

import (
	"os"

	"github.com/grabdeck/cli/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
