package main

import (
	"os"

	"github.com/llehouerou/scrubber/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
