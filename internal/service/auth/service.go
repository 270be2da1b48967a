package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/email"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/jwt"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/oauth"
)

const passwordResetTTL = 1 * time.Hour

type authService struct {
	employeeRepo  employee.EmployeeRepository
	authRepo      auth.AuthRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	emailService  email.EmailService
	frontendURL   string
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	authRepo auth.AuthRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	emailService email.EmailService,
	frontendURL string,
) auth.AuthService {
	return &authService{
		employeeRepo:  employeeRepo,
		authRepo:      authRepo,
		jwtService:    jwtService,
		googleService: googleService,
		emailService:  emailService,
		frontendURL:   frontendURL,
	}
}

// SignUp implements auth.AuthService.
func (s *authService) SignUp(ctx context.Context, req auth.SignUpRequest) (auth.SignUpResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignUpResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.SignUpResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Position:     req.Position,
		Division:     req.Division,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return auth.SignUpResponse{}, err
	}

	return auth.SignUpResponse{
		UID:   created.ID,
		Name:  created.Name,
		Email: created.Email,
	}, nil
}

// Login implements auth.AuthService.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest, adminOnly bool) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if adminOnly && !emp.IsAdmin {
		return auth.TokenResponse{}, auth.ErrNotAdmin
	}

	return s.issueTokens(ctx, emp)
}

// LoginWithGoogle implements auth.AuthService. The account must already exist;
// Google only proves ownership of the email.
func (s *authService) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, emp)
}

func (s *authService) issueTokens(ctx context.Context, emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.authRepo.StoreRefreshToken(ctx, auth.RefreshToken{
		Token:      refreshToken,
		EmployeeID: emp.ID,
		ExpiresAt:  time.Unix(refreshExp, 0),
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		UID:                   emp.ID,
		Email:                 emp.Email,
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

// RefreshToken implements auth.AuthService. The presented token must verify
// as a refresh-type JWT and still be live in the store; revocation wins over
// the JWT's own expiry claim.
func (s *authService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.authRepo.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if stored.Revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, stored.EmployeeID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		UID:                  emp.ID,
		Email:                emp.Email,
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

// Profile implements auth.AuthService.
func (s *authService) Profile(ctx context.Context) (auth.ProfileResponse, error) {
	employeeID, err := s.employeeIDFromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	return auth.ProfileResponse{
		UID:      emp.ID,
		Email:    emp.Email,
		Name:     emp.Name,
		Position: emp.Position,
		Division: emp.Division,
	}, nil
}

// Logout implements auth.AuthService.
func (s *authService) Logout(ctx context.Context) error {
	employeeID, err := s.employeeIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.authRepo.RevokeRefreshTokens(ctx, employeeID)
}

// ForgotPassword implements auth.AuthService. An unknown email is reported to
// the caller; the source system behaves the same way.
func (s *authService) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(passwordResetTTL)

	err = s.authRepo.CreatePasswordReset(ctx, auth.PasswordReset{
		Token:      token,
		EmployeeID: emp.ID,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset_password?token=%s", s.frontendURL, token)
	if err := s.emailService.SendPasswordReset(emp.Email, resetLink, expiresAt.Format(time.RFC1123)); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

// ResetPassword implements auth.AuthService. The token is single use.
func (s *authService) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	reset, err := s.authRepo.GetPasswordReset(ctx, req.Token)
	if err != nil {
		return err
	}
	if time.Now().After(reset.ExpiresAt) {
		return auth.ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.employeeRepo.UpdatePassword(ctx, reset.EmployeeID, string(hash)); err != nil {
		return err
	}

	if err := s.authRepo.DeletePasswordReset(ctx, req.Token); err != nil {
		return err
	}

	// A password change invalidates every existing session.
	return s.authRepo.RevokeRefreshTokens(ctx, reset.EmployeeID)
}

func (s *authService) employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", auth.ErrInvalidToken
	}

	return uid, nil
}
