// main.go injects the build-time version and runs the root command,
// keeping all other logic in cmd/internal so it stays testable.
package main

import (
	"fmt"
	"os"

	"flocc/cmd"
)

// version defaults to "dev"; release builds override it with
// -ldflags "-X main.version=vX.Y.Z".
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "flocc: %v\n", err)
		os.Exit(1)
	}
}
