package usecase

import (
	"time"

	"github.com/m-mizutani/pipesched/pkg/domain/model"
)

// IsInDevelopment decides whether a repository is under active development
// from its latest pipelines.
//
// A pipeline is recent when it was created no more than window before now.
// The repository is in development if any recent pipeline was not started by
// a schedule, or if more than one pipeline is recent. A single recent
// scheduled pipeline is the one this job configured and is not activity.
func IsInDevelopment(pipelines []*model.Pipeline, now time.Time, window time.Duration) bool {
	recent := 0
	for _, p := range pipelines {
		if now.Sub(p.CreatedOn) > window {
			continue
		}

		recent++
		if !p.IsScheduled() || recent > 1 {
			return true
		}
	}
	return false
}
