package directory

import "errors"

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrPatientNotFound      = errors.New("patient profile not found")
	ErrPsychologistNotFound = errors.New("psychologist profile not found")
)
