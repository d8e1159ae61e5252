package service

import "github.com/yndnr/tapkey-go/internal/core/domain"

// Dispatcher decodes datagrams for one profile.
type Dispatcher struct {
	Profile domain.Profile
}

// NewDispatcher creates a Dispatcher for p.
func NewDispatcher(p domain.Profile) Dispatcher {
	return Dispatcher{Profile: p}
}

// Decode maps a datagram onto an action. ok is false for anything the
// profile does not accept: unknown command bytes, wrong frame length, or
// a command outside the profile's set. Such datagrams are dropped.
func (d Dispatcher) Decode(frame []byte) (domain.Action, bool) {
	if len(frame) == 0 {
		return domain.Action{}, false
	}

	a, natural, ok := decode(frame)
	if !ok || !d.Profile.Supports(a.Kind) {
		return domain.Action{}, false
	}

	want := natural
	if size := d.Profile.FrameSize(); size > 0 {
		want = size
	}
	if len(frame) != want {
		return domain.Action{}, false
	}
	return a, true
}

// decode recognises the command byte and returns the action with the
// command's natural frame length.
func decode(frame []byte) (domain.Action, int, bool) {
	switch frame[0] {
	case domain.CommandPaste:
		return domain.Paste(), 1, true
	case domain.CommandBackspace:
		return domain.Backspace(), 1, true
	case domain.CommandType:
		if len(frame) < 2 {
			return domain.Action{}, 0, false
		}
		return domain.TypeChar(frame[1]), 2, true
	}
	if m, ok := domain.ModifierByCommand(frame[0]); ok {
		return domain.PressModifier(m.Key), 1, true
	}
	return domain.Action{}, 0, false
}
