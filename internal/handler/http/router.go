package http

import (
	"log/slog"
	"os"

	"github.com/attendly-hr/attendly-backend-go/internal/config"
	"github.com/attendly-hr/attendly-backend-go/internal/handler/http/middleware"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	calendarHandler CalendarHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(!cfg.IsDevelopment())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/me", authHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{email}", employeeHandler.GetByEmail)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.ListActive)
					r.Post("/", employeeHandler.Create)
					r.Put("/{email}/salary", payrollHandler.UpsertSalary)
					r.Get("/{email}/salary", payrollHandler.ListSalaryHistory)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch", attendanceHandler.Punch)
				r.Get("/summary", attendanceHandler.GetMonthSummary)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/holidays", calendarHandler.ListHolidays)
				r.Get("/week-offs", calendarHandler.ListWeekOffs)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/holidays", calendarHandler.CreateHoliday)
					r.Post("/week-offs", calendarHandler.CreateWeekOff)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/report", payrollHandler.GetSalaryReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/run", payrollHandler.RunPayroll)
				})
			})
		})
	})

	return r
}
