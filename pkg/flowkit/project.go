package flowkit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// workspaceDirName is the directory under the project root holding one
// subdirectory per job.
const workspaceDirName = "workspace"

// Project is a named data space rooted at a directory. Jobs are materialized
// under <root>/workspace/<job-id>.
type Project struct {
	name       string
	root       string
	operations []Operation

	jobs map[string]*Job
}

// NewProject creates (or reopens) a project rooted at dir with the default
// operation set.
func NewProject(name, dir string) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}
	if err := os.MkdirAll(filepath.Join(dir, workspaceDirName), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create project workspace: %w", err)
	}
	return &Project{
		name:       name,
		root:       dir,
		operations: DefaultOperations(),
		jobs:       make(map[string]*Job),
	}, nil
}

// NewTemporaryProject creates a project in a fresh uuid-suffixed directory
// under the system temp dir. The returned cleanup function removes the whole
// project tree; callers should defer it so the data space never outlives the
// generation run.
func NewTemporaryProject(name string) (*Project, func() error, error) {
	dir, err := os.MkdirTemp("", fmt.Sprintf("%s-%s-", name, uuid.NewString()[:8]))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temporary project root: %w", err)
	}

	p, err := NewProject(name, dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, nil, err
	}

	cleanup := func() error {
		return os.RemoveAll(dir)
	}
	return p, cleanup, nil
}

// Name returns the project name. It prefixes every submission name so job
// names in generated scripts are recognizable.
func (p *Project) Name() string { return p.name }

// Root returns the project root directory.
func (p *Project) Root() string { return p.root }

// Operations returns the fixed, ordered operation set of this project.
func (p *Project) Operations() []Operation {
	ops := make([]Operation, len(p.operations))
	copy(ops, p.operations)
	return ops
}

// FindOperation looks up an operation by name.
func (p *Project) FindOperation(name string) (Operation, bool) {
	for _, op := range p.operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// OpenJob materializes the job for the given state point, creating its
// working directory and persisting the state point document. Opening the
// same state point twice returns the same job.
func (p *Project) OpenJob(sp StatePoint) (*Job, error) {
	id, err := sp.ID()
	if err != nil {
		return nil, err
	}
	if j, ok := p.jobs[id]; ok {
		return j, nil
	}

	j := &Job{
		id:  id,
		sp:  sp,
		dir: filepath.Join(p.root, workspaceDirName, id),
	}
	if err := j.init(); err != nil {
		return nil, err
	}
	p.jobs[id] = j
	return j, nil
}

// Jobs returns all materialized jobs sorted by id, so iteration order is
// deterministic across runs.
func (p *Project) Jobs() []*Job {
	jobs := make([]*Job, 0, len(p.jobs))
	for _, j := range p.jobs {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].id < jobs[k].id })
	return jobs
}

// NumJobs returns the number of materialized jobs.
func (p *Project) NumJobs() int { return len(p.jobs) }
