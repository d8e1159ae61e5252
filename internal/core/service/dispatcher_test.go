package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

func TestDispatcher_Decode(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.Profile
		frame   []byte
		want    domain.Action
		ok      bool
	}{
		{"paste", domain.ProfileXhisper, []byte("p"), domain.Paste(), true},
		{"type", domain.ProfileXhisper, []byte("tA"), domain.TypeChar('A'), true},
		{"type unsupported char still decodes", domain.ProfileXhisper, []byte{'t', 0x01}, domain.TypeChar(0x01), true},
		{"backspace", domain.ProfileXhisper, []byte("b"), domain.Backspace(), true},
		{"leftctrl", domain.ProfileXhisper, []byte("C"), domain.PressModifier(domain.KeyLeftCtrl), true},
		{"rightctrl", domain.ProfileXhisper, []byte("R"), domain.PressModifier(domain.KeyRightCtrl), true},
		{"leftalt", domain.ProfileXhisper, []byte("L"), domain.PressModifier(domain.KeyLeftAlt), true},
		{"rightalt", domain.ProfileXhisper, []byte("r"), domain.PressModifier(domain.KeyRightAlt), true},
		{"leftshift", domain.ProfileXhisper, []byte("S"), domain.PressModifier(domain.KeyLeftShift), true},
		{"rightshift", domain.ProfileXhisper, []byte("T"), domain.PressModifier(domain.KeyRightShift), true},
		{"super", domain.ProfileXhisper, []byte("M"), domain.PressModifier(domain.KeyLeftMeta), true},

		{"empty", domain.ProfileXhisper, nil, domain.Action{}, false},
		{"unknown command", domain.ProfileXhisper, []byte("x"), domain.Action{}, false},
		{"type without char", domain.ProfileXhisper, []byte("t"), domain.Action{}, false},
		{"type too long", domain.ProfileXhisper, []byte("tab"), domain.Action{}, false},
		{"paste too long", domain.ProfileXhisper, []byte("pp"), domain.Action{}, false},
		{"backspace too long", domain.ProfileXhisper, []byte{'b', 0}, domain.Action{}, false},

		{"type profile: two byte backspace", domain.ProfileType, []byte{'b', 0}, domain.Backspace(), true},
		{"type profile: any second byte", domain.ProfileType, []byte("bx"), domain.Backspace(), true},
		{"type profile: one byte backspace", domain.ProfileType, []byte("b"), domain.Action{}, false},
		{"type profile: type", domain.ProfileType, []byte("t~"), domain.TypeChar('~'), true},
		{"type profile: paste rejected", domain.ProfileType, []byte{'p', 0}, domain.Action{}, false},
		{"type profile: modifier rejected", domain.ProfileType, []byte{'C', 0}, domain.Action{}, false},

		{"paste profile: paste", domain.ProfilePaste, []byte("p"), domain.Paste(), true},
		{"paste profile: type rejected", domain.ProfilePaste, []byte("ta"), domain.Action{}, false},
		{"paste profile: backspace rejected", domain.ProfilePaste, []byte("b"), domain.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewDispatcher(tt.profile).Decode(tt.frame)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatcher_RoundTripEncode(t *testing.T) {
	for _, p := range domain.Profiles() {
		actions := []domain.Action{domain.Paste(), domain.Backspace(), domain.TypeChar('q')}
		for _, m := range domain.Modifiers {
			actions = append(actions, domain.PressModifier(m.Key))
		}

		d := NewDispatcher(p)
		for _, a := range actions {
			frame, err := p.Encode(a)
			if err != nil {
				continue
			}
			got, ok := d.Decode(frame)
			assert.True(t, ok, "%s: %v", p, a)
			assert.Equal(t, a, got)
		}
	}
}
