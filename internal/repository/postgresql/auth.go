package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/database"
)

type authRepository struct {
	db *database.DB
}

func NewAuthRepository(db *database.DB) auth.AuthRepository {
	return &authRepository{db: db}
}

// StoreRefreshToken implements auth.AuthRepository.
func (r *authRepository) StoreRefreshToken(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (token, employee_id, expires_at)
		VALUES ($1, $2, $3)
	`, token.Token, token.EmployeeID, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken implements auth.AuthRepository.
func (r *authRepository) GetRefreshToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	var rt auth.RefreshToken
	err := q.QueryRow(ctx, `
		SELECT token, employee_id, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1
	`, token).Scan(&rt.Token, &rt.EmployeeID, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// RevokeRefreshTokens implements auth.AuthRepository.
func (r *authRepository) RevokeRefreshTokens(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE employee_id = $1 AND NOT revoked
	`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}

// CreatePasswordReset implements auth.AuthRepository. One pending reset per
// employee; a new request replaces the old token.
func (r *authRepository) CreatePasswordReset(ctx context.Context, reset auth.PasswordReset) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO password_resets (token, employee_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE SET
			token = EXCLUDED.token,
			expires_at = EXCLUDED.expires_at,
			created_at = NOW()
	`, reset.Token, reset.EmployeeID, reset.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}

	return nil
}

// GetPasswordReset implements auth.AuthRepository.
func (r *authRepository) GetPasswordReset(ctx context.Context, token string) (*auth.PasswordReset, error) {
	q := GetQuerier(ctx, r.db)

	var pr auth.PasswordReset
	err := q.QueryRow(ctx, `
		SELECT token, employee_id, expires_at, created_at
		FROM password_resets
		WHERE token = $1
	`, token).Scan(&pr.Token, &pr.EmployeeID, &pr.ExpiresAt, &pr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrResetTokenInvalid
		}
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	return &pr, nil
}

// DeletePasswordReset implements auth.AuthRepository.
func (r *authRepository) DeletePasswordReset(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM password_resets WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete password reset: %w", err)
	}

	return nil
}
