package repl

import (
	"sort"
	"strings"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// Completer provides command completion for the shell.
type Completer struct {
	commands []string
}

// NewCompleter creates a completer over the shell commands and modifier
// names.
func NewCompleter() *Completer {
	cmds := []string{":paste", ":bs", ":help", ":quit", ":exit"}
	for _, name := range domain.ModifierNames() {
		cmds = append(cmds, ":key "+name)
	}
	sort.Strings(cmds)
	return &Completer{commands: cmds}
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
