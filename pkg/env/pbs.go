package env

import (
	"strings"
	"text/template"
)

// pbsHeaderTemplate renders a #PBS directive header. The -N line embeds the
// content hash of the job; downstream filtering strips it.
const pbsHeaderTemplate = `#!/bin/bash
#PBS -N {{.Name}}
{{- if .Partition}}
#PBS -q {{.Partition}}
{{- end}}
#PBS -l nodes={{.Nodes}}:ppn={{.PPN}}
{{- if .Walltime}}
#PBS -l walltime={{.Walltime}}
{{- end}}
{{- if .GPUs}}
#PBS -l gres=gpus:{{.GPUs}}
{{- end}}
`

var pbsTemplate = template.Must(template.New("pbs-header").Parse(pbsHeaderTemplate))

// pbsEnvironment is a PBS/Torque-scheduled cluster environment.
type pbsEnvironment struct {
	name         string
	coresPerNode int
}

func (e *pbsEnvironment) Name() string         { return e.name }
func (e *pbsEnvironment) Scheduler() Scheduler { return SchedulerPBS }

func (e *pbsEnvironment) ScriptHeader(req Request) (string, error) {
	nodes := nodesFor(req, e.coresPerNode)

	data := struct {
		Name      string
		Partition string
		Walltime  string
		Nodes     int
		PPN       int
		GPUs      int
	}{
		Name:      req.Name,
		Partition: req.Partition,
		Nodes:     nodes,
		PPN:       tasksPerNode(req.Processes, nodes),
		GPUs:      req.GPUs,
	}
	if req.WalltimeHours > 0 {
		data.Walltime = formatWalltime(req.WalltimeHours)
	}

	var buf strings.Builder
	if err := pbsTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
