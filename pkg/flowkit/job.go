package flowkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// statePointFileName is the document persisted in each job workspace.
const statePointFileName = "statepoint.json"

// Job is a unit of work materialized from a state point, with its own
// working directory inside the project workspace. A Job is immutable once
// created.
type Job struct {
	id  string
	sp  StatePoint
	dir string
}

// ID returns the content hash identifying this job.
func (j *Job) ID() string { return j.id }

// StatePoint returns a copy of the state point this job was opened with.
func (j *Job) StatePoint() StatePoint {
	params := make(map[string]any, len(j.sp.Parameters))
	for k, v := range j.sp.Parameters {
		params[k] = v
	}
	return StatePoint{Environment: j.sp.Environment, Parameters: params}
}

// Dir returns the job's working directory.
func (j *Job) Dir() string { return j.dir }

// WriteFile writes content into the job's working directory.
func (j *Job) WriteFile(name string, content []byte) error {
	path := filepath.Join(j.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// init creates the workspace directory and persists the state point document.
// Opening an already-initialized job is a no-op.
func (j *Job) init() error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create job workspace: %w", err)
	}

	path := filepath.Join(j.dir, statePointFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	doc, err := json.MarshalIndent(j.sp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state point: %w", err)
	}
	if err := os.WriteFile(path, append(doc, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to persist state point: %w", err)
	}
	return nil
}
