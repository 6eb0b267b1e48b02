package model

import "github.com/m-mizutani/pipesched/pkg/domain/types"

// Schedule is a recurring pipeline configuration of a repository
type Schedule struct {
	ID          types.ScheduleID
	CronPattern types.CronPattern
	Branch      types.BranchName
	Enabled     bool
}

// Matches reports whether the schedule is the one managed for the cron pattern and branch
func (x *Schedule) Matches(cron types.CronPattern, branch types.BranchName) bool {
	return x.CronPattern == cron && x.Branch == branch
}

// FindSchedule returns the first schedule matching cron and branch, or nil
func FindSchedule(schedules []*Schedule, cron types.CronPattern, branch types.BranchName) *Schedule {
	for _, s := range schedules {
		if s.Matches(cron, branch) {
			return s
		}
	}
	return nil
}

type CreateScheduleInput struct {
	CronPattern types.CronPattern
	Branch      types.BranchName
}
