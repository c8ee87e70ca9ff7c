package sessionrequest

import "errors"

var (
	ErrNotFound                = errors.New("session request not found")
	ErrPatientNotFound         = errors.New("patient profile not found")
	ErrPsychologistNotFound    = errors.New("psychologist profile not found")
	ErrPsychologistUnavailable = errors.New("psychologist not found or not accepting requests")
	ErrDuplicateRequest        = errors.New("a pending request to this psychologist already exists")
	ErrAlreadyProcessed        = errors.New("session request already processed")
)
