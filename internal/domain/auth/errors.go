package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrResetTokenInvalid   = errors.New("password reset token is invalid or expired")
	ErrNotAdmin            = errors.New("account has no admin access")
)
