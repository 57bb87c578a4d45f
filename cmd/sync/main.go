// Command sync detects drift and applies the safe fixes.
package main

import (
	"os"

	"github.com/fyrsmithlabs/driftd/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewSyncCommand()))
}
