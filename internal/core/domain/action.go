package domain

import "fmt"

// ActionKind identifies what a decoded command asks the daemon to do.
type ActionKind uint8

const (
	ActionTypeChar ActionKind = iota + 1
	ActionBackspace
	ActionPaste
	ActionPressModifier
)

// String returns a short label used in logs and metric labels.
func (k ActionKind) String() string {
	switch k {
	case ActionTypeChar:
		return "type"
	case ActionBackspace:
		return "backspace"
	case ActionPaste:
		return "paste"
	case ActionPressModifier:
		return "modifier"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Action is one self-contained unit of work for the key event sequencer.
//
// Char is meaningful only for ActionTypeChar, Key only for
// ActionPressModifier.
type Action struct {
	Kind ActionKind
	Char byte
	Key  Key
}

// TypeChar returns an action that types a single ASCII character.
func TypeChar(c byte) Action { return Action{Kind: ActionTypeChar, Char: c} }

// Backspace returns an action that taps backspace.
func Backspace() Action { return Action{Kind: ActionBackspace} }

// Paste returns an action that sends ctrl+v.
func Paste() Action { return Action{Kind: ActionPaste} }

// PressModifier returns an action that taps a modifier key on its own.
func PressModifier(k Key) Action { return Action{Kind: ActionPressModifier, Key: k} }
