// Package keymap maps ASCII bytes onto US-QWERTY key codes.
package keymap

import (
	"sort"

	evdev "github.com/holoplot/go-evdev"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// Entry is the key that produces a character and whether shift must be held.
type Entry struct {
	Key   domain.Key
	Shift bool
}

// slot is one table cell; a zero Key marks an unsupported byte.
type slot struct {
	key   evdev.EvCode
	shift bool
}

// table covers 0x00-0x7F. Control characters other than tab and newline
// are left empty.
var table = [128]slot{
	'\t': {evdev.KEY_TAB, false},
	'\n': {evdev.KEY_ENTER, false},

	' ':  {evdev.KEY_SPACE, false},
	'!':  {evdev.KEY_1, true},
	'"':  {evdev.KEY_APOSTROPHE, true},
	'#':  {evdev.KEY_3, true},
	'$':  {evdev.KEY_4, true},
	'%':  {evdev.KEY_5, true},
	'&':  {evdev.KEY_7, true},
	'\'': {evdev.KEY_APOSTROPHE, false},
	'(':  {evdev.KEY_9, true},
	')':  {evdev.KEY_0, true},
	'*':  {evdev.KEY_8, true},
	'+':  {evdev.KEY_EQUAL, true},
	',':  {evdev.KEY_COMMA, false},
	'-':  {evdev.KEY_MINUS, false},
	'.':  {evdev.KEY_DOT, false},
	'/':  {evdev.KEY_SLASH, false},

	'0': {evdev.KEY_0, false},
	'1': {evdev.KEY_1, false},
	'2': {evdev.KEY_2, false},
	'3': {evdev.KEY_3, false},
	'4': {evdev.KEY_4, false},
	'5': {evdev.KEY_5, false},
	'6': {evdev.KEY_6, false},
	'7': {evdev.KEY_7, false},
	'8': {evdev.KEY_8, false},
	'9': {evdev.KEY_9, false},

	':': {evdev.KEY_SEMICOLON, true},
	';': {evdev.KEY_SEMICOLON, false},
	'<': {evdev.KEY_COMMA, true},
	'=': {evdev.KEY_EQUAL, false},
	'>': {evdev.KEY_DOT, true},
	'?': {evdev.KEY_SLASH, true},
	'@': {evdev.KEY_2, true},

	'A': {evdev.KEY_A, true}, 'B': {evdev.KEY_B, true}, 'C': {evdev.KEY_C, true},
	'D': {evdev.KEY_D, true}, 'E': {evdev.KEY_E, true}, 'F': {evdev.KEY_F, true},
	'G': {evdev.KEY_G, true}, 'H': {evdev.KEY_H, true}, 'I': {evdev.KEY_I, true},
	'J': {evdev.KEY_J, true}, 'K': {evdev.KEY_K, true}, 'L': {evdev.KEY_L, true},
	'M': {evdev.KEY_M, true}, 'N': {evdev.KEY_N, true}, 'O': {evdev.KEY_O, true},
	'P': {evdev.KEY_P, true}, 'Q': {evdev.KEY_Q, true}, 'R': {evdev.KEY_R, true},
	'S': {evdev.KEY_S, true}, 'T': {evdev.KEY_T, true}, 'U': {evdev.KEY_U, true},
	'V': {evdev.KEY_V, true}, 'W': {evdev.KEY_W, true}, 'X': {evdev.KEY_X, true},
	'Y': {evdev.KEY_Y, true}, 'Z': {evdev.KEY_Z, true},

	'[':  {evdev.KEY_LEFTBRACE, false},
	'\\': {evdev.KEY_BACKSLASH, false},
	']':  {evdev.KEY_RIGHTBRACE, false},
	'^':  {evdev.KEY_6, true},
	'_':  {evdev.KEY_MINUS, true},
	'`':  {evdev.KEY_GRAVE, false},

	'a': {evdev.KEY_A, false}, 'b': {evdev.KEY_B, false}, 'c': {evdev.KEY_C, false},
	'd': {evdev.KEY_D, false}, 'e': {evdev.KEY_E, false}, 'f': {evdev.KEY_F, false},
	'g': {evdev.KEY_G, false}, 'h': {evdev.KEY_H, false}, 'i': {evdev.KEY_I, false},
	'j': {evdev.KEY_J, false}, 'k': {evdev.KEY_K, false}, 'l': {evdev.KEY_L, false},
	'm': {evdev.KEY_M, false}, 'n': {evdev.KEY_N, false}, 'o': {evdev.KEY_O, false},
	'p': {evdev.KEY_P, false}, 'q': {evdev.KEY_Q, false}, 'r': {evdev.KEY_R, false},
	's': {evdev.KEY_S, false}, 't': {evdev.KEY_T, false}, 'u': {evdev.KEY_U, false},
	'v': {evdev.KEY_V, false}, 'w': {evdev.KEY_W, false}, 'x': {evdev.KEY_X, false},
	'y': {evdev.KEY_Y, false}, 'z': {evdev.KEY_Z, false},

	'{': {evdev.KEY_LEFTBRACE, true},
	'|': {evdev.KEY_BACKSLASH, true},
	'}': {evdev.KEY_RIGHTBRACE, true},
	'~': {evdev.KEY_GRAVE, true},
}

// Lookup returns the key for c. ok is false for bytes that cannot be typed:
// control characters other than tab and newline, DEL, and anything >= 0x80.
func Lookup(c byte) (Entry, bool) {
	if int(c) >= len(table) {
		return Entry{}, false
	}
	s := table[c]
	if s.key == 0 {
		return Entry{}, false
	}
	return Entry{Key: domain.Key(s.key), Shift: s.shift}, true
}

// Supported reports whether c can be typed.
func Supported(c byte) bool {
	_, ok := Lookup(c)
	return ok
}

// Keys returns the distinct keys referenced by the table, in ascending order.
// Shift is not included.
func Keys() []domain.Key {
	seen := make(map[domain.Key]struct{})
	for _, s := range table {
		if s.key != 0 {
			seen[domain.Key(s.key)] = struct{}{}
		}
	}
	out := make([]domain.Key, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RegisteredKeys returns every key a device serving p must register.
func RegisteredKeys(p domain.Profile) []domain.Key {
	var keys []domain.Key
	if p.TypesText() {
		keys = Keys()
	}
	seen := make(map[domain.Key]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for _, k := range p.ExtraKeys() {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
