package types

import (
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

type (
	Workspace            string
	RepoSlug             string
	BranchName           string
	CronPattern          string
	ScheduleID           string
	TriggerName          string
	BitbucketUserID      string
	BitbucketAppPassword string
)

const (
	// TriggerSchedule is the trigger name of pipelines started by a schedule
	TriggerSchedule TriggerName = "SCHEDULE"
	TriggerPush     TriggerName = "PUSH"
	TriggerManual   TriggerName = "MANUAL"
)

const (
	DefaultCronPattern CronPattern = "0 0 13 ? * 7 *"

	RecentWindow     = 7 * 24 * time.Hour
	TestRecentWindow = 2 * time.Minute
)

// DefaultBranchCandidates are tried in order when resolving a default branch
var DefaultBranchCandidates = []BranchName{"main", "master"}

func (x Workspace) String() string   { return string(x) }
func (x RepoSlug) String() string    { return string(x) }
func (x BranchName) String() string  { return string(x) }
func (x CronPattern) String() string { return string(x) }
func (x ScheduleID) String() string  { return string(x) }

// Validate checks that the pattern has the seven fields Bitbucket schedules expect
// (seconds, minutes, hours, day of month, month, day of week, year).
func (x CronPattern) Validate() error {
	if n := len(strings.Fields(string(x))); n != 7 {
		return goerr.Wrap(ErrValidationFailed, "cron pattern must have 7 fields",
			goerr.V("pattern", x),
			goerr.V("fields", n),
		)
	}
	return nil
}

func (x BitbucketAppPassword) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x BitbucketAppPassword) String() string {
	return "***********"
}
