package main

import (
	"os"

	"github.com/daleydeng/sub2api-devdb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
