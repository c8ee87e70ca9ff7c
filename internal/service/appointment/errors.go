package appointment

import "errors"

var (
	ErrNotFound             = errors.New("appointment not found")
	ErrChatNotFound         = errors.New("chat not found")
	ErrNotAssigned          = errors.New("psychologist is not assigned to this chat")
	ErrTimeSlotTaken        = errors.New("another appointment occupies this time slot")
	ErrScheduledInPast      = errors.New("appointment time is in the past")
	ErrPsychologistNotFound = errors.New("psychologist profile not found")
)
