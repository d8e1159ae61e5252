package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/core/keymap"
)

// PasteCommand sends ctrl+V.
func PasteCommand() *cli.Command {
	return &cli.Command{
		Name:   "paste",
		Usage:  "press ctrl+V",
		Action: func(c *cli.Context) error { return sendAction(c, domain.Paste()) },
	}
}

// TypeCommand types a single character.
func TypeCommand() *cli.Command {
	return &cli.Command{
		Name:      "type",
		Usage:     "type one ASCII character",
		ArgsUsage: "<char>",
		Action:    typeChar,
	}
}

// TextCommand types a string, one frame per character.
func TextCommand() *cli.Command {
	return &cli.Command{
		Name:      "text",
		Usage:     "type an ASCII string",
		ArgsUsage: "<string>",
		Action:    typeText,
	}
}

// BackspaceCommand taps backspace.
func BackspaceCommand() *cli.Command {
	return &cli.Command{
		Name:  "backspace",
		Usage: "press backspace",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of presses",
				Value:   1,
			},
		},
		Action: backspace,
	}
}

// KeyCommand taps a modifier key on its own.
func KeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "key",
		Usage:     "tap a modifier key: " + strings.Join(domain.ModifierNames(), ", "),
		ArgsUsage: "<modifier>",
		Action:    pressModifier,
	}
}

func sendAction(c *cli.Context, a domain.Action) error {
	return sendActions(c, []domain.Action{a})
}

func sendActions(c *cli.Context, actions []domain.Action) error {
	g, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}
	return g.send(c.Context, actions)
}

// send encodes actions for the selected profile and delivers them, one
// datagram per action.
func (g *GlobalFlags) send(ctx context.Context, actions []domain.Action) error {
	frames := make([][]byte, 0, len(actions))
	for _, a := range actions {
		frame, err := g.Profile.Encode(a)
		if err != nil {
			return fmt.Errorf("profile %s: %w", g.Profile, err)
		}
		frames = append(frames, frame)
	}

	sender := g.Sender()
	if len(frames) == 1 {
		return sender.Send(ctx, frames[0])
	}
	n, err := sender.SendAll(ctx, frames)
	if err != nil && n > 0 {
		return fmt.Errorf("sent %d of %d: %w", n, len(frames), err)
	}
	return err
}

func typeChar(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "expected exactly one argument")
	}
	arg := c.Args().First()
	if len(arg) != 1 {
		return usageError(c, "%q is not a single ASCII character", arg)
	}
	if !keymap.Supported(arg[0]) {
		return usageError(c, "%q cannot be typed", arg)
	}
	return sendAction(c, domain.TypeChar(arg[0]))
}

func typeText(c *cli.Context) error {
	if c.NArg() == 0 {
		return usageError(c, "missing text")
	}
	text := strings.Join(c.Args().Slice(), " ")

	actions := make([]domain.Action, 0, len(text))
	skipped := 0
	for i := 0; i < len(text); i++ {
		if !keymap.Supported(text[i]) {
			skipped++
			continue
		}
		actions = append(actions, domain.TypeChar(text[i]))
	}
	if skipped > 0 {
		fmt.Fprintf(errWriter(c), "tapkey: skipping %d byte(s) that cannot be typed\n", skipped)
	}
	if len(actions) == 0 {
		return nil
	}
	return sendActions(c, actions)
}

func backspace(c *cli.Context) error {
	n := c.Int("count")
	if n < 1 {
		return usageError(c, "--count must be at least 1")
	}
	actions := make([]domain.Action, n)
	for i := range actions {
		actions[i] = domain.Backspace()
	}
	return sendActions(c, actions)
}

func pressModifier(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "expected exactly one modifier")
	}
	m, ok := domain.ModifierByName(c.Args().First())
	if !ok {
		return usageError(c, "unknown modifier %q, want one of %s",
			c.Args().First(), strings.Join(domain.ModifierNames(), ", "))
	}
	return sendAction(c, domain.PressModifier(m.Key))
}
