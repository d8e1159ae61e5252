package main

import (
	"os"

	"github.com/yndnr/tapkey-go/internal/cli/command"
	"github.com/yndnr/tapkey-go/internal/cli/exitcode"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		command.PrintError(os.Stderr, err)
		os.Exit(exitcode.For(err))
	}
}
