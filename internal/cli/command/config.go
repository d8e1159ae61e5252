package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	clicfg "github.com/yndnr/tapkey-go/internal/cli/config"
)

// ConfigCommand manages the client config file.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "show or change client defaults",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "print the client config",
				Action: configShow,
			},
			{
				Name:      "set",
				Usage:     "set a key: " + strings.Join(clicfg.Keys(), ", "),
				ArgsUsage: "<key> <value>",
				Action:    configSet,
			},
			{
				Name:   "path",
				Usage:  "print the config file path",
				Action: configPath,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	g, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}
	cfg, err := clicfg.Load(g.ConfigPath)
	if err != nil {
		return err
	}
	return g.Print(c, cfg)
}

func configSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return usageError(c, "expected a key and a value")
	}
	path := c.String("config")
	cfg, err := clicfg.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(c.Args().Get(0), c.Args().Get(1)); err != nil {
		return err
	}
	return clicfg.Save(cfg, path)
}

func configPath(c *cli.Context) error {
	_, err := fmt.Fprintln(writer(c), c.String("config"))
	return err
}
