package main

import (
	"os"

	"github.com/patelnav/fcpsub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
