// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (DebugKV, InfoKV, WarnKV).
//
// Services accept a context and extract the logger from it, so the generator
// output on stdout is never interleaved with log lines.
package logger
