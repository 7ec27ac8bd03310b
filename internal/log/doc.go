// Package log provides structured logging with credential masking.
//
// Every component logs through an slog.Logger built here. The handler
// wrapper masks attribute values that look like credentials (the SonarQube
// auth token above all) before they reach the underlying handler, so a
// stray debug line can never leak the token into a terminal or log file.
package log
