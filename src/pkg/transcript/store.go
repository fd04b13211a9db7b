// Package transcript reads the per-stage tool output files staged by the CI
// pipeline.
package transcript

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("package", "transcript")

// Stage names a pipeline step whose output may be staged.
type Stage string

const (
	StageFormat   Stage = "fmt"
	StageInit     Stage = "init"
	StageValidate Stage = "validate"
	StagePlan     Stage = "plan"
	StageCost     Stage = "cost"
)

// Store reads stage transcripts from a staging directory. Files are named
// "<stage>.txt". A missing or unreadable transcript is empty content, never
// an error: the pipeline may legitimately skip stages.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Read returns the raw transcript for a stage, or "" when absent.
func (s *Store) Read(stage Stage) string {
	path := filepath.Join(s.dir, string(stage)+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithField("stage", stage).WithField("path", path).Debug("transcript not readable, treating as empty")
		return ""
	}
	return string(data)
}
