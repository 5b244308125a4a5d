package env

// Dotted identifiers for the supported target-cluster environments. The
// identifiers mirror the namespace layout of the workflow tooling the
// reference fixtures are generated for.
const (
	UnknownEnvironmentID   = "environment.UnknownEnvironment"
	CometEnvironmentID     = "environments.xsede.CometEnvironment"
	Stampede2EnvironmentID = "environments.xsede.Stampede2Environment"
	BridgesEnvironmentID   = "environments.xsede.BridgesEnvironment"
	FluxEnvironmentID      = "environments.umich.FluxEnvironment"
	TitanEnvironmentID     = "environments.incite.TitanEnvironment"
	EosEnvironmentID       = "environments.incite.EosEnvironment"
)

// unknownEnvironment has no scheduler; its scripts carry no directives.
type unknownEnvironment struct{}

func (unknownEnvironment) Name() string         { return UnknownEnvironmentID }
func (unknownEnvironment) Scheduler() Scheduler { return SchedulerNone }

func (unknownEnvironment) ScriptHeader(Request) (string, error) {
	return "#!/bin/bash\n", nil
}

// NewUnknown creates the fallback environment with no batch scheduler.
func NewUnknown() Environment { return unknownEnvironment{} }

// NewComet creates the SDSC Comet environment (SLURM, 24 cores per node,
// compute/shared/gpu partitions).
func NewComet() Environment {
	return &slurmEnvironment{name: CometEnvironmentID, coresPerNode: 24}
}

// NewStampede2 creates the TACC Stampede2 environment (SLURM, 48 cores per
// node on the skx-normal partition).
func NewStampede2() Environment {
	return &slurmEnvironment{name: Stampede2EnvironmentID, coresPerNode: 48}
}

// NewBridges creates the PSC Bridges environment (SLURM, 28 cores per node,
// RM/RM-Shared/GPU partitions).
func NewBridges() Environment {
	return &slurmEnvironment{name: BridgesEnvironmentID, coresPerNode: 28}
}

// NewFlux creates the University of Michigan Flux environment (PBS, 16 cores
// per node).
func NewFlux() Environment {
	return &pbsEnvironment{name: FluxEnvironmentID, coresPerNode: 16}
}

// NewTitan creates the OLCF Titan environment (PBS, 16 cores per node).
func NewTitan() Environment {
	return &pbsEnvironment{name: TitanEnvironmentID, coresPerNode: 16}
}

// NewEos creates the OLCF Eos environment (PBS, 16 cores per node).
func NewEos() Environment {
	return &pbsEnvironment{name: EosEnvironmentID, coresPerNode: 16}
}
