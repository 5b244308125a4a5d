package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name           = "schedgen"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// logLevelFlag is shared by all commands.
var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Value:   "info",
	Sources: cli.EnvVars("LOG_LEVEL"),
	Usage:   "log level (debug, info, warn, error)",
}

// Run executes the schedgen CLI. SIGINT/SIGTERM cancel the run context for
// graceful shutdown.
func Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cli.Command{
		Name:    name,
		Usage:   "Reference submission-script fixture generator",
		Version: version,
		Description: fmt.Sprintf(`schedgen - reference submission-script fixture generator

Version: %s
Commit:  %s
Built:   %s

Generates the expected submission-script outputs used by the workflow test
suite: one filtered script file per environment, job, and operation (or
bundle), archived as a single tar.gz.`, version, commit, date),
		Commands: []*cli.Command{
			generateCmd(),
		},
	}

	return root.Run(ctx, args)
}
