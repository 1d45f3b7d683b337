package http

import (
	"log/slog"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/config"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Overtime   OvertimeHandler
	Payroll    PayrollHandler
	Stock      StockHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.User.Create)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Get("/", h.User.List)
					r.Get("/{id}", h.User.Get)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/", h.Leave.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Put("/{id}/approve", h.Leave.Approve)
					r.Put("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Get("/", h.Overtime.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Post("/recompute", h.Overtime.Recompute)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/run", h.Payroll.Run)
					r.Get("/statutory", h.Payroll.StatutorySummary)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Post("/config", h.Payroll.UpsertConfig)
					r.Get("/config/{userID}", h.Payroll.GetConfig)
					r.Post("/generate/{userID}", h.Payroll.Generate)
					r.Get("/overview", h.Payroll.MonthlyOverview)
				})

				// Visibility enforced in the service layer.
				r.Get("/payslips/{userID}", h.Payroll.GetPayslip)
				r.Get("/payslips/{userID}/records", h.Payroll.ListUserPayslips)
				r.Get("/payslips/{userID}/year-summary", h.Payroll.YearSummary)
				r.Get("/payslips/{userID}/download", h.Payroll.DownloadPayslip)
			})

			r.Route("/stock", func(r chi.Router) {
				r.Get("/allocations", h.Stock.ListAllocations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Post("/items", h.Stock.UpsertItem)
					r.Get("/items", h.Stock.ListItems)
					r.Post("/allocations", h.Stock.Allocate)
					r.Get("/low", h.Stock.LowStock)
				})
			})
		})
	})

	return r
}
