package flowkit

import "strings"

// defaultN is the process/thread/GPU count shared by all resource-tagged
// test operations.
const defaultN = 2

// Directives tags an operation with the resources it requires. Zero values
// mean the operation places no demand on that resource.
type Directives struct {
	// Processes is the number of processes (MPI ranks or parallel tasks).
	Processes int
	// Threads is the OpenMP thread count per process.
	Threads int
	// GPUs is the number of GPUs.
	GPUs int
}

// Operation is a named no-op work unit whose resource directives shape the
// generated submission script.
type Operation struct {
	Name       string
	Directives Directives
}

// GPUTagged reports whether the operation name carries the GPU marker.
// This is intentionally the same substring test applied to partition names,
// so GPU operations pair only with GPU partitions.
func (o Operation) GPUTagged() bool {
	return strings.Contains(strings.ToLower(o.Name), "gpu")
}

// processes returns the effective process count, never less than one.
func (o Operation) processes() int {
	if o.Directives.Processes < 1 {
		return 1
	}
	return o.Directives.Processes
}

// DefaultOperations returns the fixed, ordered set of test operations. The
// order is part of the fixture contract: script files are generated per
// operation in this order.
func DefaultOperations() []Operation {
	return []Operation{
		{Name: "serial_op"},
		{Name: "parallel_op", Directives: Directives{Processes: defaultN}},
		{Name: "mpi_op", Directives: Directives{Processes: defaultN}},
		{Name: "omp_op", Directives: Directives{Threads: defaultN}},
		{Name: "hybrid_op", Directives: Directives{Processes: defaultN, Threads: defaultN}},
		{Name: "gpu_op", Directives: Directives{GPUs: defaultN}},
		{Name: "mpi_gpu_op", Directives: Directives{Processes: defaultN, GPUs: defaultN}},
	}
}
