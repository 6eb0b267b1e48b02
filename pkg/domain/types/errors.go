package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrRemoteAPI is returned when a remote API responds with an error envelope
	ErrRemoteAPI = goerr.New("remote API error")
	// ErrUnexpectedStatus is returned when a response has a non-success status and no error envelope
	ErrUnexpectedStatus = goerr.New("unexpected response status")
)
