package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/kantorkita/presensi-backend-go/internal/handler/http/middleware"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	presenceHandler PresenceHandler,
	workTimeHandler WorkTimeHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensi-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/sign_up", authHandler.SignUp)
		r.Post("/login", authHandler.Login)
		r.Post("/forgot_password", authHandler.ForgotPassword)
		r.Post("/reset_password", authHandler.ResetPassword)

		// The refresh_token cookie is scoped to this prefix.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/sign_up", authHandler.AdminSignUp)
			r.Post("/login", authHandler.AdminLogin)
			r.Get("/login/google", authHandler.AdminLoginWithGoogle)
			r.Get("/login/google/callback", authHandler.OAuthCallbackGoogle)
		})

		// The RFID reader is on the local network and carries no token.
		r.Post("/door_access/{id_card}", presenceHandler.DoorAccess)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/profile", authHandler.Profile)
			r.Get("/division", authHandler.Division)
			r.Post("/logout", authHandler.Logout)
			r.Get("/work_time", workTimeHandler.MyWorkTime)

			r.Post("/entry", presenceHandler.Entry)
			r.Post("/exit", presenceHandler.Exit)
			r.Get("/history", presenceHandler.History)
			r.Get("/statistic", presenceHandler.Statistic)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Put("/employees/{uid}/card", employeeHandler.AssignCard)

				r.Get("/dashboard", dashboardHandler.List)
				r.Get("/dashboard/live", dashboardHandler.Live)

				r.Post("/full_time", workTimeHandler.SetFullTime)
				r.Put("/full_time", workTimeHandler.SetFullTime)

				r.Post("/part_time", workTimeHandler.AddPartTime)
				r.Put("/part_time/{category}", workTimeHandler.UpdatePartTime)
				r.Delete("/part_time/{category}", workTimeHandler.DeletePartTime)
			})
		})
	})

	return r
}
