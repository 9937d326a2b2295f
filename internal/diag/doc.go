// Package diag defines the diagnostic model shared by the lexer, parser and
// formatter.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. The parser
// constructs a ReportBuilder via ReportError/ReportWarning/ReportInfo, chains
// WithNote and calls Emit. BagReporter aggregates diagnostics into a Bag,
// which supports sorting and deduplication.
//
// Package diag does not perform formatting or IO; rendering lives in
// internal/diagfmt.
package diag
