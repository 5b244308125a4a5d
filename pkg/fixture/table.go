package fixture

import "github.com/hpckit/schedgen/pkg/env"

// Parameter is one option name with its list of candidate values.
type Parameter struct {
	Name   string
	Values []any
}

// ParameterSet is an ordered list of parameters whose value lists are
// combined by cartesian product. Order matters: it fixes the enumeration
// order of parameter points, keeping generation deterministic.
type ParameterSet []Parameter

// TableEntry pairs an environment identifier with the parameter sets tested
// against it.
type TableEntry struct {
	Environment string
	Sets        []ParameterSet
}

// bundleOps is the operation pairing submitted together as one bundle.
var bundleOps = []string{"mpi_op", "omp_op"}

// DefaultTable returns the fixed table mapping each supported environment to
// the parameter sets that need to be covered together. Each entry is a
// minimal covering set: bundling and parallelism must appear in the same
// test, partitions and walltimes in another, and node counts in a third.
func DefaultTable() []TableEntry {
	return []TableEntry{
		{
			Environment: env.UnknownEnvironmentID,
			// No parameter sets: the unknown environment contributes no jobs
			// but stays in the table so coverage reports list it.
		},
		{
			Environment: env.CometEnvironmentID,
			Sets: []ParameterSet{
				{
					{Name: "partition", Values: []any{"compute", "shared", "gpu"}},
					{Name: "walltime", Values: []any{nil, 1}},
				},
				{
					{Name: "partition", Values: []any{"compute"}},
					{Name: "nn", Values: []any{nil, 1, 2}},
				},
				{
					{Name: "partition", Values: []any{"compute"}},
					{Name: "parallel", Values: []any{false, true}},
					{Name: "bundle", Values: []any{bundleOps}},
				},
			},
		},
		{
			Environment: env.Stampede2EnvironmentID,
			Sets: []ParameterSet{
				{
					{Name: "partition", Values: []any{"skx-normal"}},
					{Name: "walltime", Values: []any{nil, 1}},
				},
				{
					{Name: "partition", Values: []any{"skx-normal"}},
					{Name: "nn", Values: []any{nil, 1, 2}},
				},
				{
					{Name: "partition", Values: []any{"skx-normal"}},
					{Name: "parallel", Values: []any{false, true}},
					{Name: "bundle", Values: []any{bundleOps}},
				},
			},
		},
		{
			Environment: env.BridgesEnvironmentID,
			Sets: []ParameterSet{
				{
					{Name: "partition", Values: []any{"RM", "RM-Shared", "GPU"}},
					{Name: "walltime", Values: []any{nil, 1}},
				},
				{
					{Name: "partition", Values: []any{"RM"}},
					{Name: "nn", Values: []any{nil, 1, 2}},
				},
				{
					{Name: "partition", Values: []any{"RM"}},
					{Name: "parallel", Values: []any{false, true}},
					{Name: "bundle", Values: []any{bundleOps}},
				},
			},
		},
		{
			Environment: env.FluxEnvironmentID,
			Sets: []ParameterSet{
				{
					{Name: "walltime", Values: []any{nil, 1}},
				},
				{
					{Name: "nn", Values: []any{nil, 1, 2}},
				},
				{
					{Name: "parallel", Values: []any{false, true}},
					{Name: "bundle", Values: []any{bundleOps}},
				},
			},
		},
		{
			Environment: env.TitanEnvironmentID,
			Sets: []ParameterSet{
				{
					{Name: "walltime", Values: []any{nil, 1}},
				},
				{
					{Name: "nn", Values: []any{nil, 1, 2}},
				},
				{
					{Name: "parallel", Values: []any{false, true}},
					{Name: "bundle", Values: []any{bundleOps}},
				},
			},
		},
		{
			Environment: env.EosEnvironmentID,
			Sets: []ParameterSet{
				{
					{Name: "walltime", Values: []any{nil, 1}},
				},
				{
					{Name: "nn", Values: []any{nil, 1, 2}},
				},
				{
					{Name: "parallel", Values: []any{false, true}},
					{Name: "bundle", Values: []any{bundleOps}},
				},
			},
		},
	}
}
