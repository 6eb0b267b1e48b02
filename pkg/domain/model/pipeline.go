package model

import (
	"time"

	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

// Pipeline is a single build execution of a repository
type Pipeline struct {
	UUID      string
	CreatedOn time.Time
	Trigger   types.TriggerName
}

// IsScheduled reports whether the pipeline was started by a schedule rather than by a person or a push
func (x *Pipeline) IsScheduled() bool {
	return x.Trigger == types.TriggerSchedule
}
