package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ethekwini-metro/pts-backend-go/internal/config"
	appHTTP "github.com/ethekwini-metro/pts-backend-go/internal/handler/http"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/cron"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/email"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/jwt"
	"github.com/ethekwini-metro/pts-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ethekwini-metro/pts-backend-go/internal/service/attendance"
	authService "github.com/ethekwini-metro/pts-backend-go/internal/service/auth"
	dashboardService "github.com/ethekwini-metro/pts-backend-go/internal/service/dashboard"
	leaveService "github.com/ethekwini-metro/pts-backend-go/internal/service/leave"
	officerService "github.com/ethekwini-metro/pts-backend-go/internal/service/officer"
	reportService "github.com/ethekwini-metro/pts-backend-go/internal/service/report"
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

	userRepo := postgresql.NewUserRepository(db)
	officerRepo := postgresql.NewOfficerRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	officerSvc := officerService.NewOfficerService(officerRepo, auditRepo)
	attendanceSvc := attendanceService.NewAttendanceService(timeEntryRepo, officerRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, officerRepo)
	reportSvc := reportService.NewReportService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, timeEntryRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	officerHandler := appHTTP.NewOfficerHandler(officerSvc, attendanceSvc, leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	if cfg.Jobs.Enabled {
		scheduler := cron.NewScheduler()
		jobs := cron.NewPersonnelJobs(leaveRepo, timeEntryRepo, dashboardRepo, emailService, cfg.Jobs, cfg.SMTP.AlertsTo)
		jobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		officerHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
