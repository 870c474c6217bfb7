// Package dataset loads the bundled, read-only quiz dataset: question bank,
// seed users, and default-points configuration.
package dataset

import (
	"github.com/lernapp/backend/internal/domain/progress"
	"github.com/lernapp/backend/internal/domain/questionbank"
)

// Dataset is the parsed bundled data file.
type Dataset struct {
	Config    progress.Settings `json:"config" yaml:"config"`
	Users     progress.Map      `json:"users" yaml:"users"`
	Questions questionbank.Bank `json:"questions" yaml:"questions"`
}

// Empty returns the degraded default used when the data file is missing or
// unparsable: login still works, every subject reports no questions.
func Empty() *Dataset {
	return &Dataset{
		Config:    progress.Settings{DefaultPoints: 0},
		Users:     progress.Map{},
		Questions: questionbank.New(),
	}
}

// normalize replaces nil maps with empty ones so callers never nil-check.
func (d *Dataset) normalize() {
	if d.Users == nil {
		d.Users = progress.Map{}
	}
	if d.Questions == nil {
		d.Questions = questionbank.New()
	}
	if d.Config.DefaultPoints < 0 {
		d.Config.DefaultPoints = 0
	}
}
