package flowkit

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpckit/schedgen/pkg/env"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	p, err := NewProject("SubmissionTest", t.TempDir())
	require.NoError(t, err)
	return p
}

func TestStatePoint_IDDeterministic(t *testing.T) {
	sp := StatePoint{
		Environment: env.CometEnvironmentID,
		Parameters:  map[string]any{"partition": "compute", "walltime": 1},
	}

	id1, err := sp.ID()
	require.NoError(t, err)
	id2, err := sp.ID()
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Regexp(t, regexp.MustCompile(`^[a-f0-9]{32}$`), id1)
}

func TestStatePoint_IDIgnoresInsertionOrder(t *testing.T) {
	a := StatePoint{
		Environment: env.FluxEnvironmentID,
		Parameters:  map[string]any{"walltime": 1, "nn": 2},
	}
	b := StatePoint{
		Environment: env.FluxEnvironmentID,
		Parameters:  map[string]any{"nn": 2, "walltime": 1},
	}

	idA, err := a.ID()
	require.NoError(t, err)
	idB, err := b.ID()
	require.NoError(t, err)
	assert.Equal(t, idA, idB)
}

func TestStatePoint_IDDistinguishesValues(t *testing.T) {
	a := StatePoint{Environment: env.FluxEnvironmentID, Parameters: map[string]any{"nn": 1}}
	b := StatePoint{Environment: env.FluxEnvironmentID, Parameters: map[string]any{"nn": 2}}

	idA, err := a.ID()
	require.NoError(t, err)
	idB, err := b.ID()
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)
}

func TestProject_OpenJobIdempotent(t *testing.T) {
	p := newTestProject(t)
	sp := StatePoint{
		Environment: env.CometEnvironmentID,
		Parameters:  map[string]any{"partition": "compute"},
	}

	j1, err := p.OpenJob(sp)
	require.NoError(t, err)
	j2, err := p.OpenJob(sp)
	require.NoError(t, err)

	assert.Same(t, j1, j2)
	assert.Equal(t, 1, p.NumJobs())

	// The state point document is persisted in the job workspace.
	_, err = os.Stat(filepath.Join(j1.Dir(), statePointFileName))
	require.NoError(t, err)
}

func TestProject_JobsSortedByID(t *testing.T) {
	p := newTestProject(t)
	for _, nn := range []int{3, 1, 2} {
		_, err := p.OpenJob(StatePoint{
			Environment: env.TitanEnvironmentID,
			Parameters:  map[string]any{"nn": nn},
		})
		require.NoError(t, err)
	}

	jobs := p.Jobs()
	require.Len(t, jobs, 3)
	assert.Less(t, jobs[0].ID(), jobs[1].ID())
	assert.Less(t, jobs[1].ID(), jobs[2].ID())
}

func TestJob_StatePointIsCopy(t *testing.T) {
	p := newTestProject(t)
	j, err := p.OpenJob(StatePoint{
		Environment: env.CometEnvironmentID,
		Parameters:  map[string]any{"partition": "compute", "bundle": []string{"mpi_op", "omp_op"}},
	})
	require.NoError(t, err)

	sp := j.StatePoint()
	delete(sp.Parameters, "bundle")

	_, still := j.StatePoint().Parameters["bundle"]
	assert.True(t, still, "mutating the returned state point must not affect the job")
}

func TestDefaultOperations_FixedOrder(t *testing.T) {
	ops := DefaultOperations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{
		"serial_op", "parallel_op", "mpi_op", "omp_op",
		"hybrid_op", "gpu_op", "mpi_gpu_op",
	}, names)
}

func TestOperation_GPUTagged(t *testing.T) {
	gpuTagged := map[string]bool{
		"serial_op":   false,
		"parallel_op": false,
		"mpi_op":      false,
		"omp_op":      false,
		"hybrid_op":   false,
		"gpu_op":      true,
		"mpi_gpu_op":  true,
	}
	for _, op := range DefaultOperations() {
		assert.Equal(t, gpuTagged[op.Name], op.GPUTagged(), "operation %s", op.Name)
	}
}
