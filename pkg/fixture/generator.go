package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hpckit/schedgen/pkg/env"
	"github.com/hpckit/schedgen/pkg/errors"
	"github.com/hpckit/schedgen/pkg/flowkit"
)

const (
	// DefaultArchiveName is the fixed archive path, relative to the
	// working directory, consumed by the downstream test suite.
	DefaultArchiveName = "expected_submit_outputs.tar.gz"

	// defaultProjectName prefixes every submission name so generated job
	// names are recognizable and testable.
	defaultProjectName = "SubmissionTest"
)

// Generator produces the reference submission-script fixtures: one job per
// parameter point, one filtered script file per eligible operation or
// bundle, archived as a single tar.gz.
type Generator struct {
	archivePath string
	force       bool
	projectName string
	table       []TableEntry
	registry    *env.Registry
}

// Option configures a Generator.
type Option func(*Generator)

// WithArchivePath overrides the archive target path.
func WithArchivePath(path string) Option {
	return func(g *Generator) {
		if strings.TrimSpace(path) != "" {
			g.archivePath = path
		}
	}
}

// WithForce regenerates the fixtures even when the archive already exists.
func WithForce(force bool) Option {
	return func(g *Generator) {
		g.force = force
	}
}

// WithTable overrides the environment/parameter table.
func WithTable(table []TableEntry) Option {
	return func(g *Generator) {
		g.table = table
	}
}

// WithRegistry overrides the environment registry.
func WithRegistry(r *env.Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithProjectName overrides the submission-name prefix.
func WithProjectName(name string) Option {
	return func(g *Generator) {
		if strings.TrimSpace(name) != "" {
			g.projectName = name
		}
	}
}

// New creates a Generator with the fixed default table and registry.
func New(opts ...Option) *Generator {
	g := &Generator{
		archivePath: DefaultArchiveName,
		projectName: defaultProjectName,
		table:       DefaultTable(),
		registry:    env.NewRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes the generation: it enumerates the parameter table into jobs
// inside a temporary project, previews each submission, filters the script
// text down to directive lines, writes per-job script files, and archives
// the data tree. Any error surfaces directly; there are no retries.
//
// When the archive already exists and force is not set, Run performs no
// filesystem mutation and returns a skipped Output.
func (g *Generator) Run(ctx context.Context) (*Output, error) {
	start := time.Now()
	out := &Output{ArchivePath: g.archivePath}

	if _, err := os.Stat(g.archivePath); err == nil {
		if !g.force {
			slog.Info("archive already exists, skipping generation",
				"path", g.archivePath)
			out.Skipped = true
			return out, nil
		}
		if err := os.Remove(g.archivePath); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal,
				"failed to remove stale archive", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInternal,
			"failed to stat archive", err)
	}

	proj, cleanup, err := flowkit.NewTemporaryProject(g.projectName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			slog.Warn("failed to clean up temporary project", "error", cerr)
		}
	}()

	if err := g.initDataSpace(proj, out); err != nil {
		return nil, err
	}
	out.TotalJobs = proj.NumJobs()
	slog.Info("data space initialized",
		"jobs", out.TotalJobs,
		"environments", len(g.table))

	byEnv := out.byEnvironment()
	for _, job := range proj.Jobs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.generateJob(proj, job, byEnv[job.StatePoint().Environment], out); err != nil {
			return nil, err
		}
	}

	if err := proj.Export(ctx, g.archivePath); err != nil {
		return nil, err
	}

	out.TotalDuration = time.Since(start)
	slog.Info("generation complete",
		"jobs", out.TotalJobs,
		"files", out.TotalFiles,
		"size_bytes", out.TotalSize,
		"duration_sec", out.TotalDuration.Seconds(),
		"archive", out.ArchivePath)
	return out, nil
}

// initDataSpace materializes one job per cartesian-product parameter point
// for every table entry, recording per-environment job counts.
func (g *Generator) initDataSpace(proj *flowkit.Project, out *Output) error {
	for _, entry := range g.table {
		er := &EnvironmentResult{Environment: entry.Environment}
		out.Results = append(out.Results, er)

		for _, set := range entry.Sets {
			for _, point := range set.Points() {
				sp := flowkit.StatePoint{
					Environment: entry.Environment,
					Parameters:  point,
				}
				if _, err := proj.OpenJob(sp); err != nil {
					return err
				}
				er.Jobs++
			}
		}
	}
	return nil
}

// generateJob previews and writes the filtered script files for one job:
// a single bundle file when the parameter point carries a bundle key, one
// file per eligible operation otherwise.
func (g *Generator) generateJob(proj *flowkit.Project, job *flowkit.Job, er *EnvironmentResult, out *Output) error {
	sp := job.StatePoint()
	environment, err := g.registry.Resolve(sp.Environment)
	if err != nil {
		return err
	}
	params := sp.Parameters

	if rawBundle, ok := params["bundle"]; ok {
		delete(params, "bundle")
		names, err := toStringSlice(rawBundle)
		if err != nil {
			return err
		}
		opts, err := submitOptions(params, true)
		if err != nil {
			return err
		}
		fn := fmt.Sprintf("script_%s.sh", strings.Join(names, "_"))
		return g.writeScript(proj, environment, job, names, fn, opts, er, out)
	}

	opts, err := submitOptions(params, false)
	if err != nil {
		return err
	}
	partition, hasPartition := params["partition"].(string)

	for _, op := range proj.Operations() {
		if hasPartition {
			// Don't submit GPU operations to CPU partitions and vice
			// versa. The reference fixtures are tied to this exact
			// substring rule, so it must not be generalized.
			partitionGPU := strings.Contains(strings.ToLower(partition), "gpu")
			if partitionGPU != op.GPUTagged() {
				continue
			}
		}
		fn := fmt.Sprintf("script_%s.sh", op.Name)
		if err := g.writeScript(proj, environment, job, []string{op.Name}, fn, opts, er, out); err != nil {
			return err
		}
	}
	return nil
}

// writeScript previews one submission unit, filters the script text, writes
// it into the job workspace, and records it in the results.
func (g *Generator) writeScript(proj *flowkit.Project, environment env.Environment, job *flowkit.Job,
	names []string, fn string, opts flowkit.SubmitOptions, er *EnvironmentResult, out *Output) error {

	script, err := proj.SubmitPreview(environment, job, names, opts)
	if err != nil {
		return err
	}
	filtered, err := FilterScript(script)
	if err != nil {
		return err
	}
	if err := job.WriteFile(fn, []byte(filtered)); err != nil {
		return err
	}

	size := int64(len(filtered))
	if er != nil {
		er.Scripts = append(er.Scripts, ScriptFile{Job: job.ID(), Name: fn, Size: size})
		er.Size += size
	}
	out.TotalFiles++
	out.TotalSize += size

	slog.Debug("script generated",
		"job", job.ID(),
		"file", fn,
		"environment", environment.Name(),
		"size_bytes", size)
	return nil
}

// submitOptions maps a parameter point onto submission options. Unknown
// parameter names fail loudly; nil values fall back to cluster defaults.
func submitOptions(params map[string]any, bundle bool) (flowkit.SubmitOptions, error) {
	opts := flowkit.SubmitOptions{
		Pretend: true,
		Force:   true,
		Bundle:  bundle,
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := params[k]
		if v == nil {
			continue
		}
		switch k {
		case "partition":
			s, ok := v.(string)
			if !ok {
				return opts, invalidParam(k, v)
			}
			opts.Partition = s
		case "walltime":
			f, err := toFloat(v)
			if err != nil {
				return opts, invalidParam(k, v)
			}
			opts.WalltimeHours = f
		case "nn":
			n, err := toInt(v)
			if err != nil {
				return opts, invalidParam(k, v)
			}
			opts.Nodes = n
		case "parallel":
			b, ok := v.(bool)
			if !ok {
				return opts, invalidParam(k, v)
			}
			opts.Parallel = b
		default:
			return opts, errors.NewWithContext(errors.ErrCodeInvalidInput,
				"unknown submission parameter",
				map[string]any{"parameter": k})
		}
	}
	return opts, nil
}

func invalidParam(name string, value any) error {
	return errors.NewWithContext(errors.ErrCodeInvalidInput,
		"invalid submission parameter value",
		map[string]any{"parameter": name, "value": value})
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func toStringSlice(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		names := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
					"bundle entries must be operation names",
					map[string]any{"entry": e})
			}
			names = append(names, str)
		}
		return names, nil
	default:
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
			"bundle parameter must be a list of operation names",
			map[string]any{"value": v})
	}
}
