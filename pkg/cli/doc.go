// Package cli implements the command-line interface for schedgen.
//
// # Commands
//
// generate - Produce the reference submission-script archive:
//
//	schedgen generate [--force] [--output FILE] [--manifest FILE] [--format yaml|json]
//
// Enumerates the fixed environment/parameter coverage table, previews every
// submission in pretend mode, filters the script text to scheduler-directive
// lines, and archives the data tree. Exit code 0 on success, 1 on any error.
//
// # Flags
//
//	--force, -f     Regenerate even if the archive already exists
//	--output, -o    Archive path (default: expected_submit_outputs.tar.gz)
//	--manifest      Optional generation-manifest path
//	--format, -t    Manifest format: yaml, json (default: yaml)
//	--log-level     Logging verbosity (debug, info, warn, error)
//
// The CLI uses the urfave/cli/v3 framework and delegates to pkg/fixture for
// generation, pkg/serializer for manifest output, and pkg/logging for
// structured logging. Version information is embedded at build time with
// ldflags:
//
//	go build -ldflags="-X 'github.com/hpckit/schedgen/pkg/cli.version=1.0.0'"
package cli
