package flowkit

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// StatePoint is the key identifying a unique job: the dotted environment
// identifier plus one concrete parameter point.
type StatePoint struct {
	Environment string         `json:"environment"`
	Parameters  map[string]any `json:"parameters"`
}

// ID returns the content hash of the state point: the md5 hex digest of its
// canonical JSON encoding. Map keys are sorted by the JSON encoder, so the
// digest is stable across runs.
func (sp StatePoint) ID() (string, error) {
	doc, err := json.Marshal(sp)
	if err != nil {
		return "", fmt.Errorf("failed to encode state point: %w", err)
	}
	sum := md5.Sum(doc)
	return hex.EncodeToString(sum[:]), nil
}
