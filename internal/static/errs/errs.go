package errs

import "errors"

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrLanguageNotFound  = errors.New("language not found")
)

// Judge and store failures are retryable; a failing verdict is not an error
var (
	ErrJudgeUnavailable = errors.New("judge unavailable")
	ErrStoreUnavailable = errors.New("solution store unavailable")
	ErrStoreConflict    = errors.New("solution store conflict, retry the submission")
)

// Returned by solution repositories
var (
	ErrSolutionConflict = errors.New("solution already exists")
	ErrSolutionNotFound = errors.New("solution not found at expected revision")
)

var (
	InternalError = errors.New("internal error")
)
