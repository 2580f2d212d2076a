package main

import (
	"fmt"
	"net/http"

	"github.com/shiftbook/attendance-backend-go/internal/config"
	appHTTP "github.com/shiftbook/attendance-backend-go/internal/handler/http"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/cron"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/database"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftbook/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftbook/attendance-backend-go/internal/service/attendance"
	authService "github.com/shiftbook/attendance-backend-go/internal/service/auth"
	employeeService "github.com/shiftbook/attendance-backend-go/internal/service/employee"
	reportService "github.com/shiftbook/attendance-backend-go/internal/service/report"
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

	calendar, err := shiftcal.New(cfg.Shift)
	if err != nil {
		fmt.Println("Error loading shift calendar:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	credentialRepo := postgresql.NewCredentialRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AdminExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, credentialRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		credentialRepo,
		jwtService,
		calendar,
	)
	reportSvc := reportService.NewReportService(
		attendanceRepo,
		employeeRepo,
		calendar,
		cfg.Shift.OnTimeEarlyMin,
		cfg.Shift.OnTimeLateMin,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, calendar, cfg.Shift.StaleGrace).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
