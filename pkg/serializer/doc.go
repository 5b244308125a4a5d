// Package serializer handles output formatting for generation manifests.
//
// A Writer encodes any value as YAML (default) or JSON to a file or stdout.
// The fixture generator uses it to emit the optional generation manifest
// summarizing environments, jobs, and produced script files.
package serializer
