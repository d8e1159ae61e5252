package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	clicfg "github.com/yndnr/tapkey-go/internal/cli/config"
	"github.com/yndnr/tapkey-go/internal/cli/connection"
	"github.com/yndnr/tapkey-go/internal/cli/output"
	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/infra/buildinfo"
	"github.com/yndnr/tapkey-go/internal/server/config"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "tapkey",
		Usage:                "send key commands to a running tapkeyd",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			PasteCommand(),
			TypeCommand(),
			TextCommand(),
			BackspaceCommand(),
			KeyCommand(),
			ShellCommand(),
			StatusCommand(),
			ProfilesCommand(),
			ConfigCommand(),
		},
		// main maps errors to exit codes; urfave must not exit on its own.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "daemon profile: paste, type, xhisper",
			EnvVars: []string{"TAPKEY_PROFILE"},
		},
		&cli.StringFlag{
			Name:    "socket",
			Aliases: []string{"s"},
			Usage:   "command socket path (default: derived from the profile)",
			EnvVars: []string{"TAPKEY_SOCKET_PATH"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json, yaml",
			EnvVars: []string{"TAPKEY_OUTPUT"},
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "client config file",
			EnvVars: []string{"TAPKEY_CLI_CONFIG"},
			Value:   clicfg.DefaultConfigPath(),
		},
	}
}

// GlobalFlags are the resolved global settings: flags over the config file
// over built-in defaults.
type GlobalFlags struct {
	Profile    domain.Profile
	Socket     string
	RuntimeDir string
	Output     output.Format
	Wide       bool
	ConfigPath string
}

// ParseGlobalFlags extracts global flags from context, filling the gaps
// from the client config file. A flag set to the empty string (typically an
// exported but empty TAPKEY_* variable) counts as unset.
func ParseGlobalFlags(c *cli.Context) (*GlobalFlags, error) {
	path := c.String("config")
	file, err := clicfg.Load(path)
	if err != nil {
		return nil, err
	}

	profileName := file.Profile
	if v := c.String("profile"); c.IsSet("profile") && v != "" {
		profileName = v
	}
	profile, err := domain.ParseProfile(profileName)
	if err != nil {
		return nil, err
	}

	outName := file.Output
	if v := c.String("output"); c.IsSet("output") && v != "" {
		outName = v
	}
	format, err := output.ParseFormat(outName)
	if err != nil {
		return nil, domain.ErrInvalidArgument.WithDetails(err.Error())
	}

	socket := file.Socket
	if v := c.String("socket"); c.IsSet("socket") && v != "" {
		socket = v
	}

	return &GlobalFlags{
		Profile:    profile,
		Socket:     socket,
		RuntimeDir: file.RuntimeDir,
		Output:     format,
		Wide:       c.Bool("wide"),
		ConfigPath: path,
	}, nil
}

// SocketPath is the explicit socket, or the one derived from the profile.
func (g *GlobalFlags) SocketPath() string {
	if g.Socket != "" {
		return g.Socket
	}
	return config.ResolveSocketPath(g.Profile, g.RuntimeDir)
}

// Sender returns a sender for the resolved socket.
func (g *GlobalFlags) Sender() *connection.Sender {
	return connection.NewSender(g.SocketPath())
}

// Print writes data to the app's writer in the selected format.
func (g *GlobalFlags) Print(c *cli.Context, data any) error {
	return output.NewFormatter(g.Output, g.Wide).Format(writer(c), data)
}

func writer(c *cli.Context) io.Writer {
	if c.App != nil && c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func errWriter(c *cli.Context) io.Writer {
	if c.App != nil && c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

// usageError reports a bad invocation of the current command.
func usageError(c *cli.Context, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if c.Command != nil && c.Command.ArgsUsage != "" {
		msg += fmt.Sprintf(" (usage: %s %s)", c.Command.Name, c.Command.ArgsUsage)
	}
	return domain.ErrInvalidArgument.WithDetails(msg)
}

// PrintError prints an error message to stderr.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "tapkey: %v\n", err)
	var ce *connection.ConnectError
	if errors.As(err, &ce) && ce.Kind == connection.KindNoDaemon {
		fmt.Fprintln(w, "tapkey: is tapkeyd running for this profile?")
	}
}
