package domain

import (
	"fmt"
	"strings"

	evdev "github.com/holoplot/go-evdev"
)

// Key is a Linux input event code of a physical key.
type Key uint16

// Keys emitted outside the character table.
const (
	KeyBackspace  = Key(evdev.KEY_BACKSPACE)
	KeyV          = Key(evdev.KEY_V)
	KeyLeftCtrl   = Key(evdev.KEY_LEFTCTRL)
	KeyRightCtrl  = Key(evdev.KEY_RIGHTCTRL)
	KeyLeftAlt    = Key(evdev.KEY_LEFTALT)
	KeyRightAlt   = Key(evdev.KEY_RIGHTALT)
	KeyLeftShift  = Key(evdev.KEY_LEFTSHIFT)
	KeyRightShift = Key(evdev.KEY_RIGHTSHIFT)
	KeyLeftMeta   = Key(evdev.KEY_LEFTMETA)
)

// String returns the kernel name of the key, e.g. "KEY_LEFTCTRL".
func (k Key) String() string {
	if name, ok := evdev.KEYToString[evdev.EvCode(k)]; ok {
		return name
	}
	return fmt.Sprintf("KEY_%d", uint16(k))
}

// Modifier describes a modifier key a client can tap on its own.
type Modifier struct {
	Name    string // client-facing name, e.g. "leftalt"
	Command byte   // single-byte wire command
	Key     Key
}

// Modifiers lists every modifier in wire-command order.
var Modifiers = []Modifier{
	{Name: "leftctrl", Command: 'C', Key: KeyLeftCtrl},
	{Name: "rightctrl", Command: 'R', Key: KeyRightCtrl},
	{Name: "leftalt", Command: 'L', Key: KeyLeftAlt},
	{Name: "rightalt", Command: 'r', Key: KeyRightAlt},
	{Name: "leftshift", Command: 'S', Key: KeyLeftShift},
	{Name: "rightshift", Command: 'T', Key: KeyRightShift},
	{Name: "super", Command: 'M', Key: KeyLeftMeta},
}

// modifierAliases maps alternative spellings onto Modifiers names.
var modifierAliases = map[string]string{
	"leftmeta": "super",
	"meta":     "super",
}

// ModifierByName looks up a modifier by its client-facing name (case-insensitive).
func ModifierByName(name string) (Modifier, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := modifierAliases[name]; ok {
		name = alias
	}
	for _, m := range Modifiers {
		if m.Name == name {
			return m, true
		}
	}
	return Modifier{}, false
}

// ModifierByCommand looks up a modifier by its wire command byte.
func ModifierByCommand(cmd byte) (Modifier, bool) {
	for _, m := range Modifiers {
		if m.Command == cmd {
			return m, true
		}
	}
	return Modifier{}, false
}

// ModifierNames returns the client-facing modifier names.
func ModifierNames() []string {
	names := make([]string, len(Modifiers))
	for i, m := range Modifiers {
		names[i] = m.Name
	}
	return names
}
