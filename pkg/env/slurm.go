package env

import (
	"strings"
	"text/template"
)

// slurmHeaderTemplate renders an #SBATCH directive header. The job-name line
// embeds the content hash of the job; downstream filtering strips it.
const slurmHeaderTemplate = `#!/bin/bash
#SBATCH --job-name={{.Name}}
{{- if .Partition}}
#SBATCH --partition={{.Partition}}
{{- end}}
{{- if .Walltime}}
#SBATCH -t {{.Walltime}}
{{- end}}
#SBATCH --nodes={{.Nodes}}
#SBATCH --ntasks-per-node={{.TasksPerNode}}
{{- if .GPUs}}
#SBATCH --gres=gpu:{{.GPUs}}
{{- end}}
`

var slurmTemplate = template.Must(template.New("slurm-header").Parse(slurmHeaderTemplate))

// slurmEnvironment is a SLURM-scheduled cluster environment.
type slurmEnvironment struct {
	name         string
	coresPerNode int
}

func (e *slurmEnvironment) Name() string         { return e.name }
func (e *slurmEnvironment) Scheduler() Scheduler { return SchedulerSlurm }

func (e *slurmEnvironment) ScriptHeader(req Request) (string, error) {
	nodes := nodesFor(req, e.coresPerNode)

	data := struct {
		Name         string
		Partition    string
		Walltime     string
		Nodes        int
		TasksPerNode int
		GPUs         int
	}{
		Name:         req.Name,
		Partition:    req.Partition,
		Nodes:        nodes,
		TasksPerNode: tasksPerNode(req.Processes, nodes),
		GPUs:         req.GPUs,
	}
	if req.WalltimeHours > 0 {
		data.Walltime = formatWalltime(req.WalltimeHours)
	}

	var buf strings.Builder
	if err := slurmTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
