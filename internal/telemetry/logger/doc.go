// Package logger provides structured logging for tapkey.
//
// It wraps log/slog behind a small Logger interface:
//   - JSON (default) or text output
//   - a process-wide level that can be changed at runtime
//   - redaction of typed content so dictated text stays out of logs
//     unless the level is debug
//   - request ID propagation through context
package logger
