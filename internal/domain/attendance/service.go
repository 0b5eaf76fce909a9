package attendance

import "context"

type Service interface {
	// Punch records a login punch for the employee on the IST calendar date
	// of the login instant.
	Punch(ctx context.Context, req PunchRequest) (RecordResponse, error)
	// GetMonthSummary classifies every day of the requested month and returns
	// the aggregate counts plus the per-day calendar sequence.
	GetMonthSummary(ctx context.Context, req MonthSummaryRequest) (MonthSummaryResponse, error)
}
