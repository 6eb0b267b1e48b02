package usecase

// Export unexported methods for testing
var (
	GetDefaultBranchForTest     = (*UseCase).getDefaultBranch
	ListSchedulesForTest        = (*UseCase).listSchedules
	FetchRecentPipelinesForTest = (*UseCase).fetchRecentPipelines
)
