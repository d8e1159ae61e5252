package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/core/keymap"
)

// SendFunc delivers a batch of actions to the daemon.
type SendFunc func(ctx context.Context, actions []domain.Action) error

// errQuit ends the loop without error.
var errQuit = errors.New("quit")

// REPL represents the read-eval-print loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	send      SendFunc
	completer *Completer

	// Newline types ENTER after every text line.
	Newline bool
	// Prompt is printed before each line; empty disables it (for pipes).
	Prompt string
}

// New creates a new REPL reading from in and reporting to out.
func New(in io.Reader, out io.Writer, send SendFunc) *REPL {
	return &REPL{
		input:     in,
		output:    out,
		send:      send,
		completer: NewCompleter(),
		Prompt:    "tapkey> ",
	}
}

// Run reads lines until EOF, :quit or ctx is done. A failed send is
// reported and the loop continues, except when the daemon is gone.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.input)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if r.Prompt != "" {
			fmt.Fprint(r.output, r.Prompt)
		}
		if !scanner.Scan() {
			if r.Prompt != "" {
				fmt.Fprintln(r.output)
			}
			return scanner.Err()
		}

		actions, err := r.parse(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.output, "error: %v\n", err)
			continue
		}
		if len(actions) == 0 {
			continue
		}
		if err := r.send(ctx, actions); err != nil {
			if errors.Is(err, domain.ErrDaemonUnreachable) {
				return err
			}
			fmt.Fprintf(r.output, "error: %v\n", err)
		}
	}
}

// parse turns one input line into actions.
func (r *REPL) parse(line string) ([]domain.Action, error) {
	if strings.HasPrefix(line, "::") {
		return r.text(line[1:]), nil
	}
	if !strings.HasPrefix(line, ":") {
		return r.text(line), nil
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return nil, nil
	}
	switch fields[0] {
	case "quit", "exit":
		return nil, errQuit
	case "help":
		fmt.Fprintln(r.output, strings.Join(r.completer.Complete(":"), "\n"))
		return nil, nil
	case "paste":
		return []domain.Action{domain.Paste()}, nil
	case "bs":
		n := 1
		if len(fields) > 1 {
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 1 {
				return nil, fmt.Errorf("bad count %q", fields[1])
			}
			n = v
		}
		actions := make([]domain.Action, n)
		for i := range actions {
			actions[i] = domain.Backspace()
		}
		return actions, nil
	case "key":
		if len(fields) != 2 {
			return nil, errors.New("usage: :key <modifier>")
		}
		m, ok := domain.ModifierByName(fields[1])
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", fields[1])
		}
		return []domain.Action{domain.PressModifier(m.Key)}, nil
	default:
		if s := r.completer.Complete(":" + fields[0]); len(s) > 0 {
			return nil, fmt.Errorf("unknown command :%s (did you mean %s?)", fields[0], s[0])
		}
		return nil, fmt.Errorf("unknown command :%s", fields[0])
	}
}

// text types every typable byte of s, then ENTER if Newline is set.
func (r *REPL) text(s string) []domain.Action {
	actions := make([]domain.Action, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		if keymap.Supported(s[i]) {
			actions = append(actions, domain.TypeChar(s[i]))
		}
	}
	if r.Newline {
		actions = append(actions, domain.TypeChar('\n'))
	}
	return actions
}
