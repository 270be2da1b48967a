package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kantorkita/presensi-backend-go/internal/config"
	"github.com/kantorkita/presensi-backend-go/internal/domain/worktime"
	appHTTP "github.com/kantorkita/presensi-backend-go/internal/handler/http"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/database"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/email"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/jwt"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/oauth"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/sse"
	"github.com/kantorkita/presensi-backend-go/internal/repository/postgresql"
	authService "github.com/kantorkita/presensi-backend-go/internal/service/auth"
	employeeService "github.com/kantorkita/presensi-backend-go/internal/service/employee"
	presenceService "github.com/kantorkita/presensi-backend-go/internal/service/presence"
	workTimeService "github.com/kantorkita/presensi-backend-go/internal/service/worktime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	siteLocation, err := time.LoadLocation(cfg.WorkTime.Timezone)
	if err != nil {
		log.Fatal("Invalid site timezone:", err)
	}

	defaultEntry, err := worktime.ParseDayTime(cfg.WorkTime.EntryTime)
	if err != nil {
		log.Fatal("Invalid WORK_ENTRY_TIME:", err)
	}
	defaultExit, err := worktime.ParseDayTime(cfg.WorkTime.ExitTime)
	if err != nil {
		log.Fatal("Invalid WORK_EXIT_TIME:", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	presenceRepo := postgresql.NewPresenceRepository(db)
	workTimeRepo := postgresql.NewWorkTimeRepository(db)
	authRepo := postgresql.NewAuthRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()

	workTimeSvc := workTimeService.NewWorkTimeService(workTimeRepo, employeeRepo, worktime.Schedule{
		WorkStart:    defaultEntry,
		ExpectedExit: defaultExit,
	})
	presenceSvc := presenceService.NewPresenceService(
		presenceRepo,
		employeeRepo,
		workTimeSvc,
		hub,
		siteLocation,
		cfg.WorkTime.SiteLatitude,
		cfg.WorkTime.SiteLongitude,
	)
	authSvc := authService.NewAuthService(employeeRepo, authRepo, jwtSvc, googleSvc, emailSvc, cfg.App.FrontendURL)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc, googleSvc)
	presenceHandler := appHTTP.NewPresenceHandler(presenceSvc)
	workTimeHandler := appHTTP.NewWorkTimeHandler(workTimeSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(presenceSvc, hub)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		presenceHandler,
		workTimeHandler,
		dashboardHandler,
		employeeHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
