package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/handler/http/response"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/jwt"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	AdminSignUp(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	AdminLoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Division(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService   auth.AuthService
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		authService:   authService,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (a *AuthHandlerImpl) signUp(w http.ResponseWriter, r *http.Request, isAdmin bool) {
	var signUpReq auth.SignUpRequest

	if err := json.NewDecoder(r.Body).Decode(&signUpReq); err != nil {
		slog.Error("SignUp decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}
	signUpReq.IsAdmin = isAdmin

	resp, err := a.authService.SignUp(r.Context(), signUpReq)
	if err != nil {
		slog.Error("SignUp service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("account created", "uid", resp.UID)
	response.Created(w, resp)
}

// SignUp implements AuthHandler.
func (a *AuthHandlerImpl) SignUp(w http.ResponseWriter, r *http.Request) {
	a.signUp(w, r, false)
}

// AdminSignUp implements AuthHandler.
func (a *AuthHandlerImpl) AdminSignUp(w http.ResponseWriter, r *http.Request) {
	a.signUp(w, r, true)
}

func (a *AuthHandlerImpl) login(w http.ResponseWriter, r *http.Request, adminOnly bool) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	resp, err := a.authService.Login(r.Context(), loginReq, adminOnly)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.RefreshTokenExpiresIn))
	response.OK(w, resp)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, false)
}

// AdminLogin implements AuthHandler.
func (a *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, true)
}

// AdminLoginWithGoogle implements AuthHandler. Redirects the browser to the
// Google consent page.
func (a *AuthHandlerImpl) AdminLoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "invalid oauth callback", "missing code parameter")
		return
	}

	resp, err := a.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.RefreshTokenExpiresIn))
	response.OK(w, resp)
}

// RefreshToken implements AuthHandler. The token arrives in the
// refresh_token cookie; a JSON body is the fallback for non-browser clients.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		refreshTokenReq.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&refreshTokenReq); err != nil {
		slog.Error("RefreshToken decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	resp, err := a.authService.RefreshToken(r.Context(), refreshTokenReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Profile implements AuthHandler.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	resp, err := a.authService.Profile(r.Context())
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Division implements AuthHandler.
func (a *AuthHandlerImpl) Division(w http.ResponseWriter, r *http.Request) {
	resp, err := a.authService.Profile(r.Context())
	if err != nil {
		slog.Error("Division service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, map[string]string{"division": resp.Division})
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context()); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "logged out")
}

// ForgotPassword implements AuthHandler.
func (a *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var forgotPasswordReq auth.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&forgotPasswordReq); err != nil {
		slog.Error("ForgotPassword decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	if err := a.authService.ForgotPassword(r.Context(), forgotPasswordReq); err != nil {
		slog.Error("ForgotPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "password reset link has been sent")
}

// ResetPassword implements AuthHandler.
func (a *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var resetPasswordReq auth.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&resetPasswordReq); err != nil {
		slog.Error("ResetPassword decode error", "error", err)
		response.BadRequest(w, "invalid request format", err.Error())
		return
	}

	if err := a.authService.ResetPassword(r.Context(), resetPasswordReq); err != nil {
		slog.Error("ResetPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OKWithMessage(w, "password has been reset")
}
