package fixture

import (
	"regexp"
	"strings"

	"github.com/hpckit/schedgen/pkg/errors"
)

// directiveMarkers identify the scheduler-relevant lines retained by the
// filter. These are a fixed contract of the reference fixtures.
var directiveMarkers = []string{"#PBS", "#SBATCH", "OMP_NUM_THREADS"}

// nameMarkers identify job-name lines, which embed a per-run content hash
// that must be stripped so fixtures are deterministic.
var nameMarkers = []string{"#PBS -N", "#SBATCH --job-name"}

// nameSuffixPattern strips the trailing slash-delimited hash from a job-name
// line, keeping everything up to the last slash.
var nameSuffixPattern = regexp.MustCompile(`^(.*)/[a-z0-9]*`)

// containsAny reports whether any of the markers occurs in the line.
func containsAny(markers []string, line string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// FilterScript reduces submission-script text to its scheduler-directive
// header lines. Job-name lines have their hash suffix removed; a job-name
// line that does not match the expected pattern is a fatal error, since the
// name format is a fixed contract of the preview engine.
func FilterScript(script string) (string, error) {
	var out strings.Builder
	for _, line := range strings.Split(script, "\n") {
		if !containsAny(directiveMarkers, line) {
			continue
		}
		if containsAny(nameMarkers, line) {
			m := nameSuffixPattern.FindStringSubmatch(line)
			if m == nil {
				return "", errors.NewWithContext(errors.ErrCodeInvalidInput,
					"job-name line does not match the expected hash-suffix pattern",
					map[string]any{"line": line})
			}
			out.WriteString(m[1])
			out.WriteByte('\n')
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String(), nil
}
