// Package repl implements tapkey shell, a line-oriented console that types
// each input line into the focused window.
//
// Lines starting with ':' are commands instead of text:
//
//	:paste          press ctrl+V
//	:bs [n]         press backspace n times (default 1)
//	:key <name>     tap a modifier (super, leftalt, ...)
//	:help           list commands
//	:quit, :exit    leave the shell
//
// Use "::" at the start of a line to type a literal ':'.
package repl
