package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrRequestExists           = errors.New("a leave request already exists for this date")
)
