// Package service turns command frames into key event sequences.
//
//   - Dispatcher: decodes one datagram into a domain.Action, honouring the
//     active profile's command set and frame length
//   - Sequencer: plays an Action as timed press/release events on an Emitter
//
// The Emitter interface is satisfied by the uinput device and by test
// recorders, so sequencing is tested without a kernel device.
package service
