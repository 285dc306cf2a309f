package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDuplicateOrder   = errors.New("order already exists")
	ErrForbidden        = errors.New("access forbidden")
	ErrInvalidID        = errors.New("invalid document id")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
)
