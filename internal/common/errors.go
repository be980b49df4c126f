package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument marks input rejected before it reaches storage.
	ErrInvalidArgument = errors.New("invalid argument")

	// Auth errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Marketplace rules.
	ErrItemNotForSale = errors.New("item is not for sale")
	ErrOwnItem        = errors.New("cannot order own item")
)
