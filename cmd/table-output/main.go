// Command table-output renders delimited records as a table.
package main

import (
	"os"

	"github.com/sonicrules1234/table-output/internal/cli"
)

func main() {
	if err := cli.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
