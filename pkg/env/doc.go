// Package env models the target-cluster environments the fixture generator
// produces reference submission scripts for.
//
// Each Environment renders a scheduler-directive header (#SBATCH for SLURM
// clusters, #PBS for PBS/Torque clusters) from a resolved resource Request.
// Environments are looked up through an explicit Registry keyed by dotted
// identifier; an unknown identifier is an error unless a default is supplied.
package env
