package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tapkey-go/internal/cli/repl"
)

// ShellCommand starts an interactive console that types each line.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "type lines from stdin interactively (:help for commands)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "enter",
				Usage: "press Enter after each line",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "no prompt (for piped input)",
			},
		},
		Action: runShell,
	}
}

func runShell(c *cli.Context) error {
	g, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if c.App != nil && c.App.Reader != nil {
		in = c.App.Reader
	}

	r := repl.New(in, writer(c), g.send)
	r.Newline = c.Bool("enter")
	if c.Bool("quiet") {
		r.Prompt = ""
	}
	return r.Run(c.Context)
}
