package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("invalid parameters")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExist            = errors.New("email already registered")
	ErrPasswordIncorrect    = errors.New("incorrect password")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobClosed            = errors.New("job is closed")
	ErrNotJobOwner          = errors.New("not the owner of this job")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrNotAlertOwner        = errors.New("not the owner of this alert")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationExists    = errors.New("already applied to this job")
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	UnauthorizedError       = errors.New("insufficient permissions")
	UnExpectedError         = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserExist:            BadRequest,
	ErrPasswordIncorrect:    Unauthorized,
	ErrJobNotFound:          NotFound,
	ErrJobClosed:            BadRequest,
	ErrNotJobOwner:          Forbidden,
	ErrAlertNotFound:        NotFound,
	ErrNotAlertOwner:        Forbidden,
	ErrApplicationNotFound:  NotFound,
	ErrApplicationExists:    BadRequest,
	ErrInterviewNotFound:    NotFound,
	ErrConversationNotFound: NotFound,
	ErrNotParticipant:       Forbidden,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
