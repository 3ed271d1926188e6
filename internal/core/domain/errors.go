package domain

import "errors"

// Sentinel errors raised at the service boundary. The central HTTP error
// handler translates each of them to a deterministic status code.
var (
	ErrEmailRegistered = errors.New("email is already registered")
	ErrUserNotFound    = errors.New("user not found")

	ErrClientExists   = errors.New("client already exists")
	ErrClientNotFound = errors.New("client not found")

	ErrAccountExists        = errors.New("account was already registered")
	ErrAccountNotFound      = errors.New("account not found")
	ErrResponsibleNotFound  = errors.New("responsible user not found")
	ErrResponsibleAssigned  = errors.New("the user is already responsible for an account")
	ErrUserAlreadyAssigned  = errors.New("the user already has an assignation to an account")
	ErrAssignationExists    = errors.New("assignation was already registered")
	ErrAssignationNotFound  = errors.New("assignation not found")

	ErrInvalidCredentials = errors.New("the credentials do not match with any user")
	ErrUserDisabled       = errors.New("user is disabled, reach an administrator")
	ErrTokenInvalid       = errors.New("password token does not exist")
	ErrTokenExpired       = errors.New("password token has expired")
)
