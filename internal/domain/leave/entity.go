package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a full-day leave request. Only approved requests feed the
// attendance classifier's approved-leave set.
type Request struct {
	ID            string
	EmployeeEmail string
	Date          string // YYYY-MM-DD, IST calendar date
	Reason        string
	Status        Status
	DecidedBy     *string
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
