// Package logger wraps zap to provide:
//   - a global sugared logger writing console records to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithLevelContext),
//   - level parsing for configuration values,
//   - convenience functions (Debug, InfoKV, ErrorKV, etc.).
//
// Services take a context and log through the logger it carries, so names,
// fields and verbosity are scoped per call chain instead of set globally.
package logger
