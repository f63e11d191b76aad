package main

import (
	"os"

	"github.com/bitfield/logsum/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
