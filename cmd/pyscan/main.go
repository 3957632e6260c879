// Command pyscan tokenizes Python source files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/aldebaran-lang/pyscan/cmd/pyscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
