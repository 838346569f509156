package store

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrSelfReference     = errors.New("cannot reference self")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotMember         = errors.New("not a member")
)
