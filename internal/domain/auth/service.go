package auth

import (
	"context"
)

// AuthService is identity glue around the directory: token issuance and the
// account lifecycle. The presence engine only consumes the resulting claims.
type AuthService interface {
	SignUp(ctx context.Context, req SignUpRequest) (SignUpResponse, error)

	// Login verifies credentials and issues an access/refresh token pair.
	// adminOnly restricts the login to admin accounts.
	Login(ctx context.Context, req LoginRequest, adminOnly bool) (TokenResponse, error)

	// LoginWithGoogle finishes the OAuth code exchange and issues tokens for
	// the employee matching the verified Google email.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// RefreshToken exchanges a stored, unrevoked refresh token for a new
	// access token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)

	Profile(ctx context.Context) (ProfileResponse, error)

	// Logout revokes every refresh token of the authenticated account.
	Logout(ctx context.Context) error

	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
