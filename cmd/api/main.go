package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/fieldhr/hrms-backend-go/internal/config"
	appHTTP "github.com/fieldhr/hrms-backend-go/internal/handler/http"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/cron"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/document"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/jwt"
	"github.com/fieldhr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fieldhr/hrms-backend-go/internal/service/attendance"
	authService "github.com/fieldhr/hrms-backend-go/internal/service/auth"
	leaveService "github.com/fieldhr/hrms-backend-go/internal/service/leave"
	overtimeService "github.com/fieldhr/hrms-backend-go/internal/service/overtime"
	payrollService "github.com/fieldhr/hrms-backend-go/internal/service/payroll"
	stockService "github.com/fieldhr/hrms-backend-go/internal/service/stock"
	userService "github.com/fieldhr/hrms-backend-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fieldhr"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.Connect(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	stockRepo := postgresql.NewStockRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService, logger)
	userSvc := userService.NewUserService(userRepo, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, logger)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, attendanceRepo, userRepo, cfg.Payroll.HoursPerWorkingDay, logger)
	stockSvc := stockService.NewStockService(db, stockRepo, logger)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		attendanceRepo,
		leaveRepo,
		overtimeRepo,
		userRepo,
		payrollService.NewCalculator(cfg.Payroll),
		document.NewTextRenderer(),
		logger,
	)

	scheduler := cron.NewScheduler(logger)
	cron.NewOvertimeJobs(overtimeSvc, logger).RegisterJobs(scheduler)
	cron.NewStockJobs(stockSvc, logger).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, logger, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Stock:      appHTTP.NewStockHandler(stockSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server starting", slog.String("addr", port))
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
