package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashing     = errors.New("error hashing password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenTimestamps     = errors.New("token timestamps cannot be decoded")

	ErrUnknownUser    = errors.New("user no longer exists")
	ErrAccessDenied   = errors.New("access denied")
	ErrPageOutOfRange = errors.New("page is out of range")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
