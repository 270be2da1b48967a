package auth

import (
	"context"
	"time"
)

type RefreshToken struct {
	Token      string
	EmployeeID string
	ExpiresAt  time.Time
	Revoked    bool
	CreatedAt  time.Time
}

type PasswordReset struct {
	Token      string
	EmployeeID string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	RevokeRefreshTokens(ctx context.Context, employeeID string) error

	CreatePasswordReset(ctx context.Context, reset PasswordReset) error
	GetPasswordReset(ctx context.Context, token string) (*PasswordReset, error)
	DeletePasswordReset(ctx context.Context, token string) error
}
