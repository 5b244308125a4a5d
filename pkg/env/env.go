package env

import (
	"fmt"
	"math"
)

// Scheduler identifies the batch scheduler a cluster environment targets.
type Scheduler string

const (
	// SchedulerSlurm generates #SBATCH directive headers.
	SchedulerSlurm Scheduler = "slurm"
	// SchedulerPBS generates #PBS directive headers.
	SchedulerPBS Scheduler = "pbs"
	// SchedulerNone generates a bare shell header with no directives.
	SchedulerNone Scheduler = "none"
)

// Request carries the resolved resource needs for one submission unit
// (a single operation or a bundle of operations submitted together).
type Request struct {
	// Name is the full submission name, including the trailing
	// slash-delimited job hash.
	Name string

	// Partition is the target partition, empty when the environment
	// does not partition its nodes or none was requested.
	Partition string

	// Nodes overrides the computed node count when > 0.
	Nodes int

	// WalltimeHours is the requested walltime; 0 omits the directive.
	WalltimeHours float64

	// Processes is the aggregate process (task/rank) count.
	Processes int

	// GPUs is the aggregate GPU count; 0 omits the directive.
	GPUs int
}

// Environment describes a target cluster configuration capable of rendering
// scheduler-directive headers for a submission request.
type Environment interface {
	// Name returns the dotted environment identifier,
	// e.g. "environments.xsede.CometEnvironment".
	Name() string

	// Scheduler returns the batch scheduler this environment targets.
	Scheduler() Scheduler

	// ScriptHeader renders the submission-script header for the request.
	ScriptHeader(req Request) (string, error)
}

// nodesFor computes the node count for a request: an explicit override wins,
// otherwise processes are packed onto nodes by core count.
func nodesFor(req Request, coresPerNode int) int {
	if req.Nodes > 0 {
		return req.Nodes
	}
	procs := req.Processes
	if procs < 1 {
		procs = 1
	}
	if coresPerNode < 1 {
		return 1
	}
	nodes := int(math.Ceil(float64(procs) / float64(coresPerNode)))
	if nodes < 1 {
		nodes = 1
	}
	return nodes
}

// tasksPerNode spreads the aggregate process count evenly across nodes.
func tasksPerNode(processes, nodes int) int {
	if processes < 1 {
		processes = 1
	}
	if nodes < 1 {
		nodes = 1
	}
	return int(math.Ceil(float64(processes) / float64(nodes)))
}

// formatWalltime renders fractional hours as HH:MM:SS.
func formatWalltime(hours float64) string {
	totalSeconds := int(math.Round(hours * 3600))
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
