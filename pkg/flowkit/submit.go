package flowkit

import (
	"fmt"
	"strings"

	"github.com/hpckit/schedgen/pkg/env"
	"github.com/hpckit/schedgen/pkg/errors"
)

// SubmitOptions configures a submission preview.
type SubmitOptions struct {
	// Pretend must be set: this engine only renders submission scripts,
	// it never talks to a real scheduler.
	Pretend bool

	// Force requests submission regardless of prior status. The preview
	// engine tracks no status, so the flag is accepted for contract
	// compatibility and has no effect.
	Force bool

	// Bundle submits the named operations together as one unit instead of
	// individually.
	Bundle bool

	// Parallel runs bundled operations concurrently, so their resource
	// demands sum instead of taking the maximum.
	Parallel bool

	// Partition selects the target partition, when the environment has one.
	Partition string

	// WalltimeHours is the requested walltime; 0 uses the cluster default
	// and omits the directive.
	WalltimeHours float64

	// Nodes overrides the computed node count when > 0.
	Nodes int
}

// SubmitPreview renders the submission script for the named operations of a
// single job against the given environment and returns the script text. The
// text is returned directly rather than written to an output stream, so
// callers can filter it without intercepting stdout.
func (p *Project) SubmitPreview(e env.Environment, job *Job, names []string, opts SubmitOptions) (string, error) {
	if !opts.Pretend {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"real submission is not supported, set Pretend")
	}
	if len(names) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"at least one operation name is required")
	}
	if opts.Bundle && len(names) < 2 {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"a bundle needs at least two operations")
	}

	ops := make([]Operation, 0, len(names))
	for _, name := range names {
		op, ok := p.FindOperation(name)
		if !ok {
			return "", errors.NewWithContext(errors.ErrCodeNotFound,
				"unknown operation", map[string]any{"operation": name})
		}
		ops = append(ops, op)
	}

	req := env.Request{
		Name:          p.submissionName(job, names),
		Partition:     opts.Partition,
		Nodes:         opts.Nodes,
		WalltimeHours: opts.WalltimeHours,
	}
	for _, op := range ops {
		if opts.Parallel {
			req.Processes += op.processes()
			req.GPUs += op.Directives.GPUs
		} else {
			req.Processes = max(req.Processes, op.processes())
			req.GPUs = max(req.GPUs, op.Directives.GPUs)
		}
	}

	header, err := e.ScriptHeader(req)
	if err != nil {
		return "", fmt.Errorf("failed to render script header for %s: %w", e.Name(), err)
	}

	var script strings.Builder
	script.WriteString(header)
	fmt.Fprintf(&script, "\ncd %s\n", job.Dir())
	for _, op := range ops {
		fmt.Fprintf(&script, "\n# %s(%s)\n", op.Name, job.ID())
		if op.Directives.Threads > 0 {
			fmt.Fprintf(&script, "export OMP_NUM_THREADS=%d\n", op.Directives.Threads)
		}
		script.WriteString("/bin/true\n")
	}
	return script.String(), nil
}

// submissionName builds the scheduler job name. The trailing element is the
// job's content hash; consumers that need run-independent names strip it.
func (p *Project) submissionName(job *Job, names []string) string {
	return fmt.Sprintf("%s/%s/%s", p.name, strings.Join(names, "_"), job.ID())
}
