package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrAlreadyPunchedIn = errors.New("a punch already exists for this date")
)
