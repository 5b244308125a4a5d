package fixture

import (
	"fmt"
	"time"
)

// ScriptFile records one generated fixture file.
type ScriptFile struct {
	// Job is the id of the job the file was written for.
	Job string `json:"job" yaml:"job"`
	// Name is the script file name, e.g. "script_mpi_op_omp_op.sh".
	Name string `json:"name" yaml:"name"`
	// Size is the filtered script size in bytes.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`
}

// EnvironmentResult aggregates generation results for one environment.
type EnvironmentResult struct {
	// Environment is the dotted environment identifier.
	Environment string `json:"environment" yaml:"environment"`
	// Jobs is the number of jobs created for this environment.
	Jobs int `json:"jobs" yaml:"jobs"`
	// Scripts lists the generated script files.
	Scripts []ScriptFile `json:"scripts" yaml:"scripts"`
	// Size is the total size in bytes of this environment's scripts.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`
}

// Output contains the aggregated results of a generation run. It doubles as
// the generation manifest when serialized.
type Output struct {
	// Results contains per-environment results in table order.
	Results []*EnvironmentResult `json:"results" yaml:"results"`

	// TotalJobs is the number of jobs materialized.
	TotalJobs int `json:"total_jobs" yaml:"total_jobs"`

	// TotalFiles is the total count of generated script files.
	TotalFiles int `json:"total_files" yaml:"total_files"`

	// TotalSize is the total size in bytes of all generated script files.
	TotalSize int64 `json:"total_size_bytes" yaml:"total_size_bytes"`

	// TotalDuration is the wall time of the generation run.
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`

	// ArchivePath is where the data tree was archived.
	ArchivePath string `json:"archive_path" yaml:"archive_path"`

	// Skipped is true when the archive already existed and generation was
	// not forced; no filesystem mutation happened in that case.
	Skipped bool `json:"skipped" yaml:"skipped"`
}

// Summary returns a human-readable summary of the generation run.
func (o *Output) Summary() string {
	if o.Skipped {
		return fmt.Sprintf("Archive %s already exists, nothing to do.", o.ArchivePath)
	}
	return fmt.Sprintf("Generated %d files (%s) for %d jobs in %v. Archived to %s.",
		o.TotalFiles,
		formatBytes(o.TotalSize),
		o.TotalJobs,
		o.TotalDuration.Round(time.Millisecond),
		o.ArchivePath,
	)
}

// byEnvironment returns results keyed by environment identifier.
func (o *Output) byEnvironment() map[string]*EnvironmentResult {
	results := make(map[string]*EnvironmentResult, len(o.Results))
	for _, r := range o.Results {
		results[r.Environment] = r
	}
	return results
}

// formatBytes formats bytes into human-readable form.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
