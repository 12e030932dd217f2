package main

import (
	"os"

	"imgswipe/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
