// Command feriados prints the TRF3 holiday calendar.
package main

import (
	"fmt"
	"os"

	"github.com/zapponejosh/feriados-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "feriados:", err)
		os.Exit(1)
	}
}
