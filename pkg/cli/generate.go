package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hpckit/schedgen/pkg/fixture"
	"github.com/hpckit/schedgen/pkg/logging"
	"github.com/hpckit/schedgen/pkg/serializer"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate the reference submission-script archive",
		Description: `Generate reference submission scripts for all supported cluster
environments and archive them for use as test fixtures.

For each environment/parameter-set pair in the fixed coverage table, the
cartesian product of the parameter values is enumerated into jobs. Every job
yields one filtered script file per eligible operation, or a single file when
the parameter point bundles operations together. Script files retain only the
scheduler-directive header lines (#PBS, #SBATCH, OMP_NUM_THREADS); job-name
lines have their content-hash suffix stripped so the fixtures are
deterministic across runs.

If the archive already exists the command is a no-op unless --force is set.

# Examples

Generate the archive at the default path:
  schedgen generate

Regenerate even if the archive exists:
  schedgen generate --force

Write a YAML manifest of everything generated:
  schedgen generate --force --manifest manifest.yaml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Recreate the data space even if the archive already exists",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   fixture.DefaultArchiveName,
				Usage:   "Archive output path",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Optional path for a generation manifest; empty disables it",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage: fmt.Sprintf("Manifest format (supported values: %s)",
					strings.Join(serializer.SupportedFormats(), ", ")),
			},
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown manifest format: %q", outFormat)
			}

			gen := fixture.New(
				fixture.WithArchivePath(cmd.String("output")),
				fixture.WithForce(cmd.Bool("force")),
			)

			out, err := gen.Run(ctx)
			if err != nil {
				slog.Error("generation failed", "error", err)
				return err
			}

			fmt.Println(out.Summary())

			if path := cmd.String("manifest"); path != "" && !out.Skipped {
				w := serializer.NewFileWriterOrStdout(outFormat, path)
				defer w.Close()
				if err := w.Serialize(ctx, out); err != nil {
					return fmt.Errorf("failed to write manifest: %w", err)
				}
			}
			return nil
		},
	}
}
