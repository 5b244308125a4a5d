// Package fixture generates the reference submission-script fixtures used by
// the workflow-management test suite.
//
// The generator enumerates a fixed table of environment/parameter-set pairs
// into concrete parameter points (cartesian product), materializes one job
// per point inside a temporary project, previews each submission in pretend
// mode, filters the script text down to scheduler-directive lines (#PBS,
// #SBATCH, OMP_NUM_THREADS) with job-name hash suffixes stripped, writes one
// script file per eligible operation or bundle into the job workspace, and
// archives the resulting tree as a single tar.gz.
//
// Generation is fully sequential and offline; rerunning against an existing
// archive is a no-op unless forced.
package fixture
