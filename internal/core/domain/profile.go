package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Wire command bytes. Modifier commands are listed in Modifiers.
const (
	CommandPaste     byte = 'p'
	CommandType      byte = 't'
	CommandBackspace byte = 'b'
)

// VendorID is the USB vendor id reported by every virtual keyboard.
const VendorID uint16 = 0x1234

// Profile selects one daemon/client pairing: which commands are accepted,
// which keys the device registers, the socket name and the device identity.
type Profile string

const (
	ProfilePaste   Profile = "paste"
	ProfileType    Profile = "type"
	ProfileXhisper Profile = "xhisper"

	DefaultProfile = ProfileXhisper
)

// DeviceIdentity is what the virtual keyboard reports to the kernel.
type DeviceIdentity struct {
	Name    string
	Vendor  uint16
	Product uint16
}

type profileSpec struct {
	socketName string
	device     DeviceIdentity
	actions    map[ActionKind]bool
	// frameSize > 0 forces every frame to exactly that many bytes.
	frameSize int
	extraKeys []Key
}

var profiles = map[Profile]profileSpec{
	ProfilePaste: {
		socketName: ".yell_paste_socket",
		device:     DeviceIdentity{Name: "yell", Vendor: VendorID, Product: 0x5678},
		actions:    map[ActionKind]bool{ActionPaste: true},
		extraKeys:  []Key{KeyLeftCtrl, KeyV},
	},
	ProfileType: {
		socketName: ".yell_type_socket",
		device:     DeviceIdentity{Name: "yell-typer", Vendor: VendorID, Product: 0x5679},
		actions:    map[ActionKind]bool{ActionTypeChar: true, ActionBackspace: true},
		frameSize:  2,
		extraKeys:  []Key{KeyBackspace, KeyLeftShift},
	},
	ProfileXhisper: {
		socketName: ".xhisper_socket",
		device:     DeviceIdentity{Name: "xhisper", Vendor: VendorID, Product: 0x5678},
		actions: map[ActionKind]bool{
			ActionTypeChar:      true,
			ActionBackspace:     true,
			ActionPaste:         true,
			ActionPressModifier: true,
		},
		extraKeys: []Key{
			KeyBackspace, KeyV,
			KeyLeftCtrl, KeyRightCtrl, KeyLeftAlt, KeyRightAlt,
			KeyLeftShift, KeyRightShift, KeyLeftMeta,
		},
	},
}

// Profiles returns all known profiles sorted by name.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseProfile parses a profile name. An empty name selects DefaultProfile.
func ParseProfile(s string) (Profile, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultProfile, nil
	}
	p := Profile(s)
	if !p.Valid() {
		return "", ErrUnknownProfile.WithDetails(s)
	}
	return p, nil
}

// Valid reports whether p is a known profile.
func (p Profile) Valid() bool {
	_, ok := profiles[p]
	return ok
}

func (p Profile) String() string { return string(p) }

// SocketName returns the socket file name, relative to the runtime directory.
func (p Profile) SocketName() string { return profiles[p].socketName }

// Device returns the identity of the profile's virtual keyboard.
func (p Profile) Device() DeviceIdentity { return profiles[p].device }

// Supports reports whether the profile accepts actions of kind k.
func (p Profile) Supports(k ActionKind) bool { return profiles[p].actions[k] }

// FrameSize returns the fixed frame length of the profile, or 0 when each
// command has its natural length.
func (p Profile) FrameSize() int { return profiles[p].frameSize }

// TypesText reports whether the profile needs the whole character table registered.
func (p Profile) TypesText() bool { return p.Supports(ActionTypeChar) }

// ExtraKeys returns the keys the profile emits outside the character table.
func (p Profile) ExtraKeys() []Key {
	keys := profiles[p].extraKeys
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// Encode renders an action as a wire frame for this profile.
func (p Profile) Encode(a Action) ([]byte, error) {
	if !p.Supports(a.Kind) {
		return nil, ErrUnknownCommand.WithDetails(fmt.Sprintf("%s not offered by profile %s", a.Kind, p))
	}

	var frame []byte
	switch a.Kind {
	case ActionTypeChar:
		frame = []byte{CommandType, a.Char}
	case ActionBackspace:
		frame = []byte{CommandBackspace}
	case ActionPaste:
		frame = []byte{CommandPaste}
	case ActionPressModifier:
		cmd, ok := modifierCommand(a.Key)
		if !ok {
			return nil, ErrInvalidArgument.WithDetails(fmt.Sprintf("%s is not a modifier", a.Key))
		}
		frame = []byte{cmd}
	default:
		return nil, ErrUnknownCommand.WithDetails(a.Kind.String())
	}

	if size := p.FrameSize(); size > len(frame) {
		frame = append(frame, make([]byte, size-len(frame))...)
	}
	return frame, nil
}

func modifierCommand(k Key) (byte, bool) {
	for _, m := range Modifiers {
		if m.Key == k {
			return m.Command, true
		}
	}
	return 0, false
}
