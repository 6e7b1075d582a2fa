package main

import (
	"os"

	"github.com/appna-io/apx-linter/src/cli/cmd"
)

func main() {
	os.Exit(cmd.ExecuteLint())
}
