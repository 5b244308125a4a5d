// Package errors provides structured error types for the fixture generator.
//
// StructuredError carries a stable error code alongside the message, the
// underlying cause (compatible with errors.Is/errors.As), and optional
// context for debugging. The generator fails loudly on the first error; no
// retries are performed anywhere, since fixture generation is a local,
// deterministic, offline task.
package errors
