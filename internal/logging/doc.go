// Package logging assembles the slog loggers used by the relparse commands,
// the library scanner and the HTTP API.
//
// It owns the console and JSON handlers, rotates file output through
// lumberjack, and exposes context helpers so scan and request code can tag
// log lines with scan and request IDs. NewNop returns a discarding logger
// for tests and wiring that cannot fail.
package logging
