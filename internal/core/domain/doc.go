// Package domain defines the core domain models for tapkey.
//
// Domain models are pure values without IO dependencies:
//
//   - Key: Linux input key codes and the tappable modifiers
//   - Action: one unit of work for the key event sequencer
//   - Profile: daemon/client pairing (commands, keys, socket, device identity)
//   - Errors: coded domain errors
package domain
