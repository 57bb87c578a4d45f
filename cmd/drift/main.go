// Command drift detects inconsistencies between developer-workflow
// artifacts. It is strictly read-only; use sync to repair.
package main

import (
	"os"

	"github.com/fyrsmithlabs/driftd/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewDriftCommand()))
}
